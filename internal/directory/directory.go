// Package directory holds the fixed contact registry. Contacts are set once
// at construction and never mutated afterwards; there is no create/update/
// delete surface.
package directory

import (
	"log/slog"

	"github.com/glofwatch/glof-alerts/internal/models"
)

type Directory struct {
	contacts []models.Contact
}

func New(contacts []models.Contact) *Directory {
	d := &Directory{contacts: contacts}
	slog.Info("contact directory initialized", "count", len(contacts))
	return d
}

// ContactsFor returns every active contact covering the given lake whose role
// is in roles. An empty roles set defaults to all four roles.
func (d *Directory) ContactsFor(lakeName string, roles []models.Role) []models.Contact {
	if len(roles) == 0 {
		roles = models.AllRoles()
	}

	roleSet := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	var matched []models.Contact
	for _, c := range d.contacts {
		if c.Active && c.Covers(lakeName) && roleSet[c.Role] {
			matched = append(matched, c)
		}
	}
	return matched
}

// All returns every active contact.
func (d *Directory) All() []models.Contact {
	var active []models.Contact
	for _, c := range d.contacts {
		if c.Active {
			active = append(active, c)
		}
	}
	return active
}

// ByID returns the contact with the given id, or nil if none exists.
func (d *Directory) ByID(id string) *models.Contact {
	for _, c := range d.contacts {
		if c.ID == id {
			contact := c
			return &contact
		}
	}
	return nil
}
