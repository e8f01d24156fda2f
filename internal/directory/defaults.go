package directory

import "github.com/glofwatch/glof-alerts/internal/models"

// DefaultContacts is the predefined production contact list. These are the
// only contacts in the system; there is no dynamic registration.
func DefaultContacts() []models.Contact {
	return []models.Contact{
		{
			ID:       "Defence_Base",
			Name:     "DEFENCE AUTHORITY",
			Phone:    "+918956911720",
			Email:    "bhavsarkrishna02@gmail.com",
			Role:     models.RoleAdmin,
			Region:   "NORTH_REGION",
			LakeArea: models.LakeAreaAll,
			Active:   true,
		},
		{
			ID:       "emergency_team_1",
			Name:     "Emergency Response Team",
			Phone:    "+919765743155",
			Email:    "rajputmanas593@gmail.com",
			Role:     models.RoleEmergencyTeam,
			Region:   "NORTH_REGION",
			LakeArea: models.LakeAreaAll,
			Active:   true,
		},
		{
			ID:       "rescue_pangong_1",
			Name:     "Local residential store pangong Tso",
			Phone:    "+919699216764",
			Email:    "yash61304@gmail.com",
			Role:     models.RoleRescue,
			Region:   "NORTH_REGION",
			LakeArea: models.LakeAreaAll,
			Active:   true,
		},
	}
}
