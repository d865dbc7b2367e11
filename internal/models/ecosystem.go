package models

import "fmt"

// Ecosystem represents a package ecosystem a manifest can be generated for
type Ecosystem string

const (
	EcosystemNpm    Ecosystem = "npm"
	EcosystemNuGet  Ecosystem = "nuget"
	EcosystemPyPI   Ecosystem = "pypi"
	EcosystemMaven2 Ecosystem = "maven2"
	EcosystemGo     Ecosystem = "go"
)

// Strategy selects how name/version pairs are read from a scan record
type Strategy int

const (
	StrategyProperties Strategy = iota // name/version taken from record props
	StrategyJarFilename                // parsed from <name>-<version>.jar
	StrategyGoProxy                    // parsed from <module>/@v/<version>.<ext>
)

// Ecosystems lists every supported ecosystem in CLI order
func Ecosystems() []Ecosystem {
	return []Ecosystem{EcosystemNpm, EcosystemNuGet, EcosystemPyPI, EcosystemMaven2, EcosystemGo}
}

// ParseEcosystem validates an ecosystem tag given on the command line
func ParseEcosystem(tag string) (Ecosystem, error) {
	e := Ecosystem(tag)
	if !e.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEcosystem, tag)
	}
	return e, nil
}

// Valid reports whether e is a known ecosystem
func (e Ecosystem) Valid() bool {
	switch e {
	case EcosystemNpm, EcosystemNuGet, EcosystemPyPI, EcosystemMaven2, EcosystemGo:
		return true
	}
	return false
}

// Strategy returns the extraction strategy used for the ecosystem
func (e Ecosystem) Strategy() Strategy {
	switch e {
	case EcosystemMaven2:
		return StrategyJarFilename
	case EcosystemGo:
		return StrategyGoProxy
	default:
		return StrategyProperties
	}
}

// DefaultProps returns the Artifactory property names holding package name
// and version. Ecosystems that don't use props return empty strings.
func (e Ecosystem) DefaultProps() PropNames {
	switch e {
	case EcosystemNpm:
		return PropNames{Name: "npm.name", Version: "npm.version"}
	case EcosystemNuGet:
		return PropNames{Name: "nuget.title", Version: "nuget.version"}
	case EcosystemPyPI:
		return PropNames{Name: "pypi.name", Version: "pypi.version"}
	}
	return PropNames{}
}

// ManifestName returns the file name of the generated manifest
func (e Ecosystem) ManifestName() string {
	switch e {
	case EcosystemNpm:
		return "package.json"
	case EcosystemNuGet:
		return "nuget.csproj"
	case EcosystemPyPI:
		return "requirements.txt"
	case EcosystemMaven2:
		return "pom.xml"
	case EcosystemGo:
		return "go.mod"
	}
	return ""
}

// PURLType returns the package-url type of the ecosystem
func (e Ecosystem) PURLType() string {
	switch e {
	case EcosystemMaven2:
		return "maven"
	case EcosystemGo:
		return "golang"
	default:
		return string(e)
	}
}

// PropNames holds the two property names read by property-based extraction
type PropNames struct {
	Name    string `toml:"name" yaml:"name"`
	Version string `toml:"version" yaml:"version"`
}
