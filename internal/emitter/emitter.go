// Package emitter serializes a dependency mapping into the native manifest
// format of an ecosystem and writes it to disk.
package emitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// Encoder is the interface for manifest serializers
type Encoder interface {
	// Encode renders deps and returns the dependencies present in the output
	Encode(deps *models.Mapping) ([]byte, []models.Dependency, error)
}

// Get returns the encoder for the specified ecosystem
func Get(e models.Ecosystem, cfg *models.Config) (Encoder, error) {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	switch e {
	case models.EcosystemNpm:
		return &NpmEncoder{}, nil
	case models.EcosystemNuGet:
		return &NuGetEncoder{Config: cfg.NuGet}, nil
	case models.EcosystemPyPI:
		return &PyPIEncoder{}, nil
	case models.EcosystemMaven2:
		return &MavenEncoder{Config: cfg.Maven}, nil
	case models.EcosystemGo:
		return &GoModEncoder{Config: cfg.Go}, nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedEcosystem, e)
	}
}

// Result describes a written manifest
type Result struct {
	Path         string
	Dependencies []models.Dependency // dependencies present in the manifest
	Written      int
	Filtered     int // dependencies dropped by the encoder
}

// WriteError is returned when a manifest could not be serialized or written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsWriteError reports whether err is a soft emission failure
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}

// OutputPath resolves where the manifest for e is placed: next to ref if it
// is an existing file, inside ref otherwise
func OutputPath(ref string, e models.Ecosystem) string {
	dir := ref
	if info, err := os.Stat(ref); err == nil && info.Mode().IsRegular() {
		dir = filepath.Dir(ref)
	}
	return filepath.Join(dir, e.ManifestName())
}

// Emit writes the manifest for deps. An unsupported ecosystem is reported
// before anything touches the filesystem; any later failure is a *WriteError.
func Emit(ctx context.Context, deps *models.Mapping, e models.Ecosystem, ref string, cfg *models.Config) (Result, error) {
	enc, err := Get(e, cfg)
	if err != nil {
		return Result{}, err
	}

	out := OutputPath(ref, e)
	res := Result{Path: out}

	data, written, err := enc.Encode(deps)
	if err != nil {
		return res, &WriteError{Path: out, Err: err}
	}
	res.Dependencies = written
	res.Written = len(written)
	res.Filtered = deps.Len() - res.Written

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return res, &WriteError{Path: out, Err: err}
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return res, &WriteError{Path: out, Err: err}
	}

	slog.InfoContext(ctx, "created manifest", "path", out, "dependencies", res.Written, "filtered", res.Filtered)
	return res, nil
}
