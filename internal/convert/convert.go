package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/ethanolivertroy/scan2manifest/internal/bom"
	"github.com/ethanolivertroy/scan2manifest/internal/emitter"
	"github.com/ethanolivertroy/scan2manifest/internal/extract"
	"github.com/ethanolivertroy/scan2manifest/internal/log"
	"github.com/ethanolivertroy/scan2manifest/internal/models"
	"github.com/ethanolivertroy/scan2manifest/internal/parsers"
)

// SBOMName is the file name of the CycloneDX document written with --sbom
const SBOMName = "bom.json"

// Converter orchestrates extraction and emission for one report
type Converter struct {
	config *models.Config
}

// Result summarizes a conversion run
type Result struct {
	emitter.Result
	Extracted int    // distinct dependencies found in the report
	SBOMPath  string // empty unless an SBOM was written
}

// New creates a new Converter with the given configuration
func New(config *models.Config) *Converter {
	if config == nil {
		config = models.DefaultConfig()
	}
	return &Converter{config: config}
}

// Run converts the report at reportPath into the manifest of e.
// Emission failures come back as *emitter.WriteError together with the
// partially filled Result.
func (c *Converter) Run(ctx context.Context, e models.Ecosystem, reportPath string) (Result, error) {
	ctx = log.ContextAttrs(ctx,
		slog.String("ecosystem", string(e)),
		slog.String("report", reportPath),
	)

	// Step 1: Extract dependencies from the report
	deps, err := extract.Extract(ctx, reportPath, e, c.config)
	if err != nil {
		return Result{}, fmt.Errorf("extracting dependencies: %w", err)
	}
	res := Result{Extracted: deps.Len()}

	// Step 2: Write the manifest
	ref := reportPath
	if c.config.OutputDir != "" {
		ref = c.config.OutputDir
	}
	res.Result, err = emitter.Emit(ctx, deps, e, ref, c.config)
	if err != nil {
		return res, err
	}

	// Step 3: Optional CycloneDX SBOM next to the manifest
	if c.config.SBOM {
		res.SBOMPath = filepath.Join(filepath.Dir(res.Path), SBOMName)
		if err := writeSBOM(res.SBOMPath, e, reportPath, deps); err != nil {
			return res, &emitter.WriteError{Path: res.SBOMPath, Err: err}
		}
		slog.InfoContext(ctx, "created sbom", "path", res.SBOMPath, "components", deps.Len())
	}

	// Step 4: Optional read-back of the manifest
	if c.config.Verify {
		if err := Verify(ctx, res.Path, res.Dependencies); err != nil {
			return res, err
		}
	}

	return res, nil
}

// Verify parses the manifest at path and checks it lists exactly the
// names of want
func Verify(ctx context.Context, path string, want []models.Dependency) error {
	got, err := parsers.ParseFile(path)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", path, err)
	}
	if len(got) != len(want) {
		return fmt.Errorf("%w: %s lists %d dependencies, expected %d", models.ErrVerifyMismatch, path, len(got), len(want))
	}

	names := make(map[string]struct{}, len(got))
	for _, d := range got {
		names[d.Name] = struct{}{}
	}
	for _, d := range want {
		if _, ok := names[d.Name]; !ok {
			return fmt.Errorf("%w: %s is missing %s", models.ErrVerifyMismatch, path, d.Name)
		}
	}
	slog.DebugContext(ctx, "manifest verified", "path", path, "dependencies", len(got))
	return nil
}

func writeSBOM(path string, e models.Ecosystem, reportPath string, deps *models.Mapping) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	b := bom.NewBuilder().
		AppendDependencies(e, deps).
		AppendProperties(
			cdx.Property{Name: "scan2manifest:ecosystem", Value: string(e)},
			cdx.Property{Name: "scan2manifest:report", Value: filepath.Base(reportPath)},
		)
	if err := b.AsJSON(f); err != nil {
		return err
	}
	return f.Close()
}
