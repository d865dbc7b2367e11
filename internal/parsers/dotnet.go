package parsers

import (
	"encoding/xml"
	"strings"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// NuGetProjectParser parses SDK-style .csproj files
type NuGetProjectParser struct{}

// CanParse returns true for .csproj files
func (p *NuGetProjectParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".csproj")
}

type csproj struct {
	ItemGroups []struct {
		References []struct {
			Include string `xml:"Include,attr"`
			Version string `xml:"Version,attr"`
		} `xml:"PackageReference"`
	} `xml:"ItemGroup"`
}

// Parse extracts PackageReference entries from every ItemGroup
func (p *NuGetProjectParser) Parse(filepath string, content []byte) ([]models.Dependency, error) {
	var proj csproj
	if err := xml.Unmarshal(content, &proj); err != nil {
		return nil, err
	}

	var deps []models.Dependency
	for _, group := range proj.ItemGroups {
		for _, ref := range group.References {
			deps = append(deps, models.Dependency{
				Name:    ref.Include,
				Version: ref.Version,
			})
		}
	}
	return deps, nil
}
