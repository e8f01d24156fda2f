// Package i18n carries the dashboard's static translation dictionaries.
package i18n

// DefaultLang is the fallback when an unknown language code is requested.
const DefaultLang = "en"

var translations = map[string]map[string]string{
	"en": {
		"dashboard":       "Dashboard",
		"lake_database":   "Lake Database",
		"ml_predictions":  "ML & Predictions",
		"risk_assessment": "Risk Assessment",
		"safety":          "Safety Precautions",
	},
	"hi": {
		"dashboard":       "डैशबोर्ड",
		"lake_database":   "झील डेटाबेस",
		"ml_predictions":  "एमएल और भविष्यवाणियाँ",
		"risk_assessment": "जोखिम मूल्यांकन",
		"safety":          "सुरक्षा सावधानियाँ",
	},
	"mr": {
		"dashboard":       "डॅशबोर्ड",
		"lake_database":   "तलाव डेटाबेस",
		"ml_predictions":  "एमएल आणि अंदाज",
		"risk_assessment": "धोका मूल्यांकन",
		"safety":          "सुरक्षा खबरदारी",
	},
	"gu": {
		"dashboard":       "ડેશબોર્ડ",
		"lake_database":   "સરોવર ડેટાબેઝ",
		"ml_predictions":  "એમએલ અને આગાહીઓ",
		"risk_assessment": "જોખમ મૂલ્યાંકન",
		"safety":          "સલામતી સાવચેતીઓ",
	},
}

// Translations returns the dictionary for lang, falling back to English.
func Translations(lang string) map[string]string {
	if dict, ok := translations[lang]; ok {
		return dict
	}
	return translations[DefaultLang]
}
