package emitter

import (
	"fmt"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
	"golang.org/x/mod/modfile"
)

// GoModEncoder outputs a go.mod requiring every dependency
type GoModEncoder struct {
	Config models.GoConfig
}

// Encode generates go.mod content for deps
func (e *GoModEncoder) Encode(deps *models.Mapping) ([]byte, []models.Dependency, error) {
	f := new(modfile.File)
	if err := f.AddModuleStmt(e.Config.Module); err != nil {
		return nil, nil, fmt.Errorf("module %q: %w", e.Config.Module, err)
	}
	if err := f.AddGoStmt(e.Config.GoVersion); err != nil {
		return nil, nil, fmt.Errorf("go version %q: %w", e.Config.GoVersion, err)
	}

	all := deps.All()
	for _, d := range all {
		f.AddNewRequire(d.Name, d.Version, false)
	}
	f.Cleanup()

	data, err := f.Format()
	if err != nil {
		return nil, nil, err
	}
	return data, all, nil
}
