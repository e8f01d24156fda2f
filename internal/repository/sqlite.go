package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/glofwatch/glof-alerts/internal/models"
	_ "modernc.org/sqlite"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS lakes (
			name TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS glof_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lake_name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			elevation_m INTEGER NOT NULL,
			region TEXT NOT NULL,
			outburst_count INTEGER NOT NULL,
			glof_period TEXT,
			lake_type TEXT,
			weather_conditions TEXT,
			glof_occurred INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_glof_events_region ON glof_events(region);
		CREATE INDEX IF NOT EXISTS idx_glof_events_lake_name ON glof_events(lake_name);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) AddLake(ctx context.Context, l *models.Lake) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO lakes (name, state, latitude, longitude) VALUES (?, ?, ?, ?)`,
		l.Name, l.State, l.Latitude, l.Longitude)
	if err != nil {
		return fmt.Errorf("error inserting lake %q: %w", l.Name, err)
	}
	return nil
}

func (s *SQLiteDB) AddEvent(ctx context.Context, e *models.GLOFEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO glof_events
			(lake_name, latitude, longitude, elevation_m, region, outburst_count,
			 glof_period, lake_type, weather_conditions, glof_occurred)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.LakeName, e.Latitude, e.Longitude, e.ElevationM, e.Region, e.OutburstCount,
		e.GLOFPeriod, e.LakeType, e.WeatherConditions, boolToInt(e.GLOFOccurred))
	if err != nil {
		return fmt.Errorf("error inserting glof event for %q: %w", e.LakeName, err)
	}
	return nil
}

func (s *SQLiteDB) ListLakes(ctx context.Context) ([]models.Lake, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, state, latitude, longitude FROM lakes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error querying lakes: %w", err)
	}
	defer rows.Close()

	var lakes []models.Lake
	for rows.Next() {
		var l models.Lake
		if err := rows.Scan(&l.Name, &l.State, &l.Latitude, &l.Longitude); err != nil {
			return nil, fmt.Errorf("error scanning lake row: %w", err)
		}
		lakes = append(lakes, l)
	}
	return lakes, rows.Err()
}

func (s *SQLiteDB) ListEvents(ctx context.Context, regions []string) ([]models.GLOFEvent, error) {
	query := `SELECT lake_name, latitude, longitude, elevation_m, region, outburst_count,
			glof_period, lake_type, weather_conditions, glof_occurred
		FROM glof_events`

	var args []any
	if len(regions) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(regions)), ",")
		query += fmt.Sprintf(" WHERE region IN (%s)", placeholders)
		for _, r := range regions {
			args = append(args, r)
		}
	}
	query += " ORDER BY lake_name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying glof events: %w", err)
	}
	defer rows.Close()

	var events []models.GLOFEvent
	for rows.Next() {
		var e models.GLOFEvent
		var occurred int
		if err := rows.Scan(&e.LakeName, &e.Latitude, &e.Longitude, &e.ElevationM, &e.Region,
			&e.OutburstCount, &e.GLOFPeriod, &e.LakeType, &e.WeatherConditions, &occurred); err != nil {
			return nil, fmt.Errorf("error scanning glof event row: %w", err)
		}
		e.GLOFOccurred = occurred != 0
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *SQLiteDB) CountLakes(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lakes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting lakes: %w", err)
	}
	return count, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
