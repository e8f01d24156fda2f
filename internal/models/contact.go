package models

import "time"

type Role string

const (
	RoleLocal         Role = "LOCAL"
	RoleAdmin         Role = "ADMIN"
	RoleRescue        Role = "RESCUE"
	RoleEmergencyTeam Role = "EMERGENCY_TEAM"
)

// AllRoles is the default target set when a caller does not narrow the
// audience of an alert.
func AllRoles() []Role {
	return []Role{RoleLocal, RoleAdmin, RoleRescue, RoleEmergencyTeam}
}

// LakeAreaAll marks a contact as covering every glacial lake.
const LakeAreaAll = "ALL"

type Contact struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Role      Role
	Region    string
	LakeArea  string // specific lake name or LakeAreaAll
	Active    bool
	CreatedAt time.Time
}

// Covers reports whether the contact should receive alerts for the given lake.
func (c Contact) Covers(lakeName string) bool {
	return c.LakeArea == LakeAreaAll || c.LakeArea == lakeName
}
