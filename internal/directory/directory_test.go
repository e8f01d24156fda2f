package directory

import (
	"testing"

	"github.com/glofwatch/glof-alerts/internal/models"
)

func testContacts() []models.Contact {
	return []models.Contact{
		{ID: "admin_1", Name: "Admin", Role: models.RoleAdmin, LakeArea: models.LakeAreaAll, Active: true},
		{ID: "rescue_pangong", Name: "Pangong Rescue", Role: models.RoleRescue, LakeArea: "Pangong Tso", Active: true},
		{ID: "rescue_gurudongmar", Name: "Gurudongmar Rescue", Role: models.RoleRescue, LakeArea: "Gurudongmar", Active: true},
		{ID: "inactive_1", Name: "Retired", Role: models.RoleLocal, LakeArea: models.LakeAreaAll, Active: false},
	}
}

func TestContactsFor_LakeCoverage(t *testing.T) {
	d := New(testContacts())

	got := d.ContactsFor("Pangong Tso", nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts for Pangong Tso, got %d", len(got))
	}
	for _, c := range got {
		if c.ID == "rescue_gurudongmar" {
			t.Error("contact covering a different lake should not match")
		}
		if c.ID == "inactive_1" {
			t.Error("inactive contact should not match")
		}
	}
}

func TestContactsFor_RoleFilter(t *testing.T) {
	d := New(testContacts())

	got := d.ContactsFor("Pangong Tso", []models.Role{models.RoleRescue})
	if len(got) != 1 || got[0].ID != "rescue_pangong" {
		t.Fatalf("expected only rescue_pangong, got %v", got)
	}
}

func TestContactsFor_DefaultsToAllRoles(t *testing.T) {
	d := New(testContacts())

	withNil := d.ContactsFor("Gurudongmar", nil)
	withAll := d.ContactsFor("Gurudongmar", models.AllRoles())
	if len(withNil) != len(withAll) {
		t.Errorf("nil roles should default to all roles: got %d vs %d", len(withNil), len(withAll))
	}
}

func TestAll_ExcludesInactive(t *testing.T) {
	d := New(testContacts())

	for _, c := range d.All() {
		if !c.Active {
			t.Errorf("All returned inactive contact %s", c.ID)
		}
	}
	if len(d.All()) != 3 {
		t.Errorf("expected 3 active contacts, got %d", len(d.All()))
	}
}

func TestByID(t *testing.T) {
	d := New(testContacts())

	if c := d.ByID("admin_1"); c == nil || c.Name != "Admin" {
		t.Errorf("ByID(admin_1) = %v", c)
	}
	if c := d.ByID("nope"); c != nil {
		t.Errorf("ByID(nope) should be nil, got %v", c)
	}
}

func TestDefaultContacts(t *testing.T) {
	contacts := DefaultContacts()
	if len(contacts) != 3 {
		t.Fatalf("expected 3 predefined contacts, got %d", len(contacts))
	}

	seen := make(map[string]bool)
	for _, c := range contacts {
		if seen[c.ID] {
			t.Errorf("duplicate contact id %s", c.ID)
		}
		seen[c.ID] = true
		if !c.Active {
			t.Errorf("predefined contact %s should be active", c.ID)
		}
		if c.LakeArea != models.LakeAreaAll {
			t.Errorf("predefined contact %s should cover all lakes", c.ID)
		}
	}
}
