// Package extract reads Artifactory scan reports and turns their records
// into a dependency mapping for a single ecosystem.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// ReadReport decodes the JSON array stored at path
func ReadReport(path string) ([]models.ScanRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	var records []models.ScanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	// null decodes to a nil slice, [] to an empty one
	if records == nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, models.ErrNotArray)
	}
	return records, nil
}

// Extract reads the report at path and builds the mapping for e
func Extract(ctx context.Context, path string, e models.Ecosystem, cfg *models.Config) (*models.Mapping, error) {
	records, err := ReadReport(path)
	if err != nil {
		return nil, err
	}
	return FromRecords(ctx, records, e, cfg)
}

// FromRecords builds the mapping for e from already decoded records.
// Records that can't be mapped are skipped; only a cancelled ctx or an
// unknown ecosystem stops the loop.
func FromRecords(ctx context.Context, records []models.ScanRecord, e models.Ecosystem, cfg *models.Config) (*models.Mapping, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedEcosystem, e)
	}
	if cfg == nil {
		cfg = models.DefaultConfig()
	}

	var extract func(models.ScanRecord) (models.Dependency, error)
	switch e.Strategy() {
	case models.StrategyProperties:
		props := cfg.PropsFor(e)
		extract = func(r models.ScanRecord) (models.Dependency, error) {
			return fromProps(r, props)
		}
	case models.StrategyJarFilename:
		group := cfg.Maven.DefaultGroup
		extract = func(r models.ScanRecord) (models.Dependency, error) {
			return fromJarPath(r.Path, group)
		}
	case models.StrategyGoProxy:
		extract = func(r models.ScanRecord) (models.Dependency, error) {
			return fromGoProxyPath(r.Path)
		}
	}

	deps := models.NewMapping()
	skipped := 0
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dep, err := extract(r)
		if err != nil {
			skipped++
			// missing props are worth a warning, filename mismatches are expected noise
			if e.Strategy() == models.StrategyProperties {
				slog.WarnContext(ctx, "skipping record", "path", r.Path, "error", err)
			} else {
				slog.DebugContext(ctx, "skipping record", "path", r.Path, "error", err)
			}
			continue
		}
		deps.Set(dep)
	}

	slog.DebugContext(ctx, "extraction done", "records", len(records), "dependencies", deps.Len(), "skipped", skipped)
	return deps, nil
}
