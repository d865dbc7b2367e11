package parsers

import (
	"encoding/xml"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// MavenPOMParser parses pom.xml files
type MavenPOMParser struct{}

// CanParse returns true for pom.xml files
func (p *MavenPOMParser) CanParse(filename string) bool {
	return filename == "pom.xml"
}

type pom struct {
	Dependencies []struct {
		GroupID    string `xml:"groupId"`
		ArtifactID string `xml:"artifactId"`
		Version    string `xml:"version"`
	} `xml:"dependencies>dependency"`
}

// Parse extracts the direct dependencies of the project
func (p *MavenPOMParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var proj pom
	if err := xml.Unmarshal(content, &proj); err != nil {
		return nil, err
	}

	deps := make([]models.Dependency, 0, len(proj.Dependencies))
	for _, d := range proj.Dependencies {
		deps = append(deps, models.Dependency{
			Name:    d.ArtifactID,
			Version: d.Version,
			Group:   d.GroupID,
		})
	}
	return deps, nil
}
