package repository

import (
	"context"

	"github.com/glofwatch/glof-alerts/internal/models"
)

// HimalayanRegions are the regions the dashboard surfaces GLOF events for.
var HimalayanRegions = []string{"Uttarakhand", "Sikkim", "Ladakh", "Himachal Pradesh"}

type LakeRepository interface {
	AddLake(ctx context.Context, l *models.Lake) error
	AddEvent(ctx context.Context, e *models.GLOFEvent) error
	ListLakes(ctx context.Context) ([]models.Lake, error)
	ListEvents(ctx context.Context, regions []string) ([]models.GLOFEvent, error)
	CountLakes(ctx context.Context) (int, error)
}
