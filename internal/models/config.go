package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds configuration for a conversion run
type Config struct {
	// Property names per ecosystem tag, overriding Ecosystem.DefaultProps
	Props map[string]PropNames `toml:"props" yaml:"props"`

	NuGet NuGetConfig `toml:"nuget" yaml:"nuget"`
	Maven MavenConfig `toml:"maven" yaml:"maven"`
	Go    GoConfig    `toml:"go" yaml:"go"`

	// Output settings
	OutputDir string `toml:"output_dir" yaml:"output_dir"` // overrides the directory derived from the report
	SBOM      bool   `toml:"sbom" yaml:"sbom"`             // also write a CycloneDX bom.json
	Verify    bool   `toml:"verify" yaml:"verify"`         // parse the written manifest back

	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// NuGetConfig holds the fixed csproj project settings
type NuGetConfig struct {
	SDK             string `toml:"sdk" yaml:"sdk"`
	OutputType      string `toml:"output_type" yaml:"output_type"`
	TargetFramework string `toml:"target_framework" yaml:"target_framework"`
}

// MavenConfig holds the fixed pom.xml project coordinates
type MavenConfig struct {
	DefaultGroup string `toml:"default_group" yaml:"default_group"` // groupId given to every extracted jar
	GroupID      string `toml:"group_id" yaml:"group_id"`
	ArtifactID   string `toml:"artifact_id" yaml:"artifact_id"`
	Packaging    string `toml:"packaging" yaml:"packaging"`
	Version      string `toml:"version" yaml:"version"`
	Name         string `toml:"name" yaml:"name"`
	URL          string `toml:"url" yaml:"url"`
}

// GoConfig holds the go.mod header
type GoConfig struct {
	Module    string `toml:"module" yaml:"module"`
	GoVersion string `toml:"go_version" yaml:"go_version"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		NuGet: NuGetConfig{
			SDK:             "Microsoft.NET.Sdk",
			OutputType:      "Exe",
			TargetFramework: "net5.0",
		},
		Maven: MavenConfig{
			DefaultGroup: "org.apache.maven",
			GroupID:      "org.openjfx",
			ArtifactID:   "hellofx",
			Packaging:    "jar",
			Version:      "1.0-SNAPSHOT",
			Name:         "demo",
			URL:          "http://maven.apache.org",
		},
		Go: GoConfig{
			Module:    "example.com/scan2manifest",
			GoVersion: "1.22",
		},
	}
}

// PropsFor returns the property names used for e, falling back to the
// ecosystem defaults for anything the config leaves empty
func (c *Config) PropsFor(e Ecosystem) PropNames {
	names := e.DefaultProps()
	if override, ok := c.Props[string(e)]; ok {
		if override.Name != "" {
			names.Name = override.Name
		}
		if override.Version != "" {
			names.Version = override.Version
		}
	}
	return names
}

// LoadConfig reads a TOML or YAML config file on top of DefaultConfig.
// The format is chosen by file extension.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: expected .toml, .yaml or .yml", ext)
	}

	for tag := range cfg.Props {
		if _, err := ParseEcosystem(tag); err != nil {
			return nil, fmt.Errorf("config props: %w", err)
		}
	}
	return cfg, nil
}
