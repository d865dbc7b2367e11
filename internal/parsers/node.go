package parsers

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// NodePackageJSONParser parses package.json files (direct dependencies only)
type NodePackageJSONParser struct{}

// CanParse returns true for package.json files
func (p *NodePackageJSONParser) CanParse(filename string) bool {
	return filename == "package.json"
}

// packageJSON represents the structure of package.json
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Parse extracts dependencies from package.json content, sorted by name
func (p *NodePackageJSONParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, err
	}

	var deps []models.Dependency
	for _, set := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		for name, version := range set {
			deps = append(deps, models.Dependency{
				Name:    name,
				Version: cleanNpmVersion(version),
			})
		}
	}

	sort.Slice(deps, func(i, j int) bool {
		return deps[i].Name < deps[j].Name
	})
	return deps, nil
}

// cleanNpmVersion removes version prefixes like ^, ~, etc.
func cleanNpmVersion(version string) string {
	version = strings.TrimPrefix(version, "^")
	version = strings.TrimPrefix(version, "~")
	version = strings.TrimPrefix(version, ">=")
	version = strings.TrimPrefix(version, ">")
	version = strings.TrimPrefix(version, "<=")
	version = strings.TrimPrefix(version, "<")
	version = strings.TrimPrefix(version, "=")
	return version
}
