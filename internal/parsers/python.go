package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// PythonRequirementsParser parses requirements.txt files
type PythonRequirementsParser struct{}

// CanParse returns true for requirements.txt files
func (p *PythonRequirementsParser) CanParse(filename string) bool {
	return filename == "requirements.txt" ||
		strings.HasSuffix(filename, "-requirements.txt") ||
		strings.HasSuffix(filename, "_requirements.txt")
}

// versionPattern matches package version specifiers like ==1.2.3, >=1.2.3, ~=1.2.3
var versionPattern = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)\s*(===|==|>=|<=|~=|!=|<|>)\s*([^\s=<>!~]\S*)$`)

// simplePattern matches just package names without versions
var simplePattern = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)\s*$`)

// Parse extracts dependencies from requirements.txt content
func (p *PythonRequirementsParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var deps []models.Dependency
	lines := strings.Split(string(content), "\n")

	for lineNum, line := range lines {
		line = strings.TrimSpace(line)

		// Skip empty lines, comments, and options
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		// Remove inline comments
		if idx := strings.Index(line, " #"); idx > 0 {
			line = strings.TrimSpace(line[:idx])
		}

		name, version := parseVersionSpec(line)
		if name == "" {
			return nil, fmt.Errorf("%s:%d: unparsable requirement %q", filepath, lineNum+1, line)
		}
		deps = append(deps, models.Dependency{
			Name:    name,
			Version: version,
		})
	}

	return deps, nil
}

func parseVersionSpec(line string) (name string, version string) {
	// Try exact/pinned version patterns
	if matches := versionPattern.FindStringSubmatch(line); matches != nil {
		name = matches[1]
		version = matches[3]
		return
	}

	// Try simple package name (no version)
	if matches := simplePattern.FindStringSubmatch(line); matches != nil {
		name = matches[1]
		version = ""
		return
	}

	return "", ""
}
