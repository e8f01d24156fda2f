package models

// Lake is a monitored glacial lake from the lakes dataset.
type Lake struct {
	Name      string
	State     string
	Latitude  float64
	Longitude float64
}

// GLOFEvent is a historical outburst-flood record for a lake.
type GLOFEvent struct {
	LakeName          string
	Latitude          float64
	Longitude         float64
	ElevationM        int
	Region            string
	OutburstCount     int
	GLOFPeriod        string
	LakeType          string
	WeatherConditions string
	GLOFOccurred      bool
}
