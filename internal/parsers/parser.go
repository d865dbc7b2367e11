// Package parsers reads generated manifests back into dependencies.
package parsers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// Parser is the interface for manifest file parsers
type Parser interface {
	// CanParse returns true if this parser can handle the given filename
	CanParse(filename string) bool

	// Parse extracts dependencies from the file content
	Parse(filepath string, content []byte) ([]models.Dependency, error)
}

// GetAllParsers returns all available parsers
func GetAllParsers() []Parser {
	return []Parser{
		&PythonRequirementsParser{},
		&NodePackageJSONParser{},
		&NuGetProjectParser{},
		&MavenPOMParser{},
		&GoModParser{IncludeIndirect: true},
	}
}

// ForFile returns the parser handling the base name of path
func ForFile(path string) (Parser, bool) {
	filename := filepath.Base(path)
	for _, p := range GetAllParsers() {
		if p.CanParse(filename) {
			return p, true
		}
	}
	return nil, false
}

// ParseFile reads path and parses it with the matching parser
func ParseFile(path string) ([]models.Dependency, error) {
	p, ok := ForFile(path)
	if !ok {
		return nil, fmt.Errorf("%w: no parser for %s", models.ErrUnsupportedEcosystem, filepath.Base(path))
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(path, content)
}
