package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/glofwatch/glof-alerts/internal/models"
)

// SeedFromCSV imports the lake and GLOF-event datasets into the repository.
// It is a no-op when the store already holds lakes, so restarts do not
// duplicate data. Missing files are logged and skipped.
func SeedFromCSV(ctx context.Context, repo LakeRepository, lakesPath, eventsPath string) error {
	count, err := repo.CountLakes(ctx)
	if err != nil {
		return fmt.Errorf("error checking existing lakes: %w", err)
	}
	if count > 0 {
		slog.Debug("lake store already seeded", "lakes", count)
		return nil
	}

	if err := seedLakes(ctx, repo, lakesPath); err != nil {
		return err
	}
	return seedEvents(ctx, repo, eventsPath)
}

func seedLakes(ctx context.Context, repo LakeRepository, path string) error {
	rows, err := readCSV(path)
	if err != nil {
		slog.Warn("lakes dataset unavailable", "path", path, "error", err)
		return nil
	}

	added := 0
	for _, row := range rows {
		lat, latErr := strconv.ParseFloat(row["Latitude"], 64)
		lon, lonErr := strconv.ParseFloat(row["Longitude"], 64)
		if latErr != nil || lonErr != nil {
			slog.Warn("skipping lake row with bad coordinates", "lake", row["Lake Name"])
			continue
		}

		l := &models.Lake{
			Name:      row["Lake Name"],
			State:     row["State/UT"],
			Latitude:  lat,
			Longitude: lon,
		}
		if err := repo.AddLake(ctx, l); err != nil {
			return err
		}
		added++
	}

	slog.Info("seeded lakes", "count", added, "path", path)
	return nil
}

func seedEvents(ctx context.Context, repo LakeRepository, path string) error {
	rows, err := readCSV(path)
	if err != nil {
		slog.Warn("glof events dataset unavailable", "path", path, "error", err)
		return nil
	}

	added := 0
	for _, row := range rows {
		lat, latErr := strconv.ParseFloat(row["latitude"], 64)
		lon, lonErr := strconv.ParseFloat(row["longitude"], 64)
		elev, elevErr := strconv.Atoi(row["elevation_m"])
		outbursts, outErr := strconv.Atoi(row["outburst_count"])
		occurred, occErr := strconv.Atoi(row["glof_occurred"])
		if latErr != nil || lonErr != nil || elevErr != nil || outErr != nil || occErr != nil {
			slog.Warn("skipping glof event row with bad numeric fields", "lake", row["lake_name"])
			continue
		}

		e := &models.GLOFEvent{
			LakeName:          row["lake_name"],
			Latitude:          lat,
			Longitude:         lon,
			ElevationM:        elev,
			Region:            row["region"],
			OutburstCount:     outbursts,
			GLOFPeriod:        row["glof_period"],
			LakeType:          row["lake_type"],
			WeatherConditions: row["weather_conditions"],
			GLOFOccurred:      occurred != 0,
		}
		if err := repo.AddEvent(ctx, e); err != nil {
			return err
		}
		added++
	}

	slog.Info("seeded glof events", "count", added, "path", path)
	return nil
}

// readCSV parses a CSV with a header row into field-name keyed maps.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
