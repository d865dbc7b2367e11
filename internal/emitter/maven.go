package emitter

import (
	"encoding/xml"
	"strings"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

const pomNamespace = "http://maven.apache.org/POM/4.0.0"

// MavenEncoder outputs a pom.xml with fixed project coordinates
type MavenEncoder struct {
	Config models.MavenConfig
}

type pom struct {
	XMLName      xml.Name        `xml:"project"`
	Xmlns        string          `xml:"xmlns,attr"`
	ModelVersion string          `xml:"modelVersion"`
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Packaging    string          `xml:"packaging"`
	Version      string          `xml:"version"`
	Name         string          `xml:"name"`
	URL          string          `xml:"url"`
	Dependencies pomDependencies `xml:"dependencies"`
}

type pomDependencies struct {
	Dependency []pomDependency `xml:"dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// dottedVersion accepts versions looking like major.minor.patch
func dottedVersion(v string) bool {
	return strings.Count(v, ".") == 2
}

// Encode generates pom.xml content. Dependencies whose version isn't of the
// form x.y.z are left out.
func (e *MavenEncoder) Encode(deps *models.Mapping) ([]byte, []models.Dependency, error) {
	p := pom{
		Xmlns:        pomNamespace,
		ModelVersion: "4.0.0",
		GroupID:      e.Config.GroupID,
		ArtifactID:   e.Config.ArtifactID,
		Packaging:    e.Config.Packaging,
		Version:      e.Config.Version,
		Name:         e.Config.Name,
		URL:          e.Config.URL,
	}

	var written []models.Dependency
	for _, d := range deps.All() {
		if !dottedVersion(d.Version) {
			continue
		}
		group := d.Group
		if group == "" {
			group = e.Config.DefaultGroup
		}
		p.Dependencies.Dependency = append(p.Dependencies.Dependency, pomDependency{
			GroupID:    group,
			ArtifactID: d.Name,
			Version:    d.Version,
		})
		d.Group = group
		written = append(written, d)
	}

	data, err := xml.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(data)+1)
	out = append(out, xml.Header...)
	out = append(out, data...)
	return append(out, '\n'), written, nil
}
