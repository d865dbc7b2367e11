package emitter

import (
	"encoding/xml"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// NuGetEncoder outputs an SDK-style csproj with one PackageReference per dependency
type NuGetEncoder struct {
	Config models.NuGetConfig
}

type csproj struct {
	XMLName       xml.Name         `xml:"Project"`
	SDK           string           `xml:"Sdk,attr"`
	PropertyGroup csprojProperties `xml:"PropertyGroup"`
	ItemGroup     csprojItems      `xml:"ItemGroup"`
}

type csprojProperties struct {
	OutputType      string `xml:"OutputType"`
	TargetFramework string `xml:"TargetFramework"`
}

type csprojItems struct {
	References []packageReference `xml:"PackageReference"`
}

type packageReference struct {
	Include string `xml:"Include,attr"`
	Version string `xml:"Version,attr"`
}

// Encode generates nuget.csproj content for deps
func (e *NuGetEncoder) Encode(deps *models.Mapping) ([]byte, []models.Dependency, error) {
	proj := csproj{
		SDK: e.Config.SDK,
		PropertyGroup: csprojProperties{
			OutputType:      e.Config.OutputType,
			TargetFramework: e.Config.TargetFramework,
		},
	}
	all := deps.All()
	for _, d := range all {
		proj.ItemGroup.References = append(proj.ItemGroup.References, packageReference{
			Include: d.Name,
			Version: d.Version,
		})
	}

	data, err := xml.MarshalIndent(proj, "", "  ")
	if err != nil {
		return nil, nil, err
	}
	return append(data, '\n'), all, nil
}
