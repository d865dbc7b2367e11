package models_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

func TestParseEcosystem(t *testing.T) {
	t.Parallel()

	for _, e := range models.Ecosystems() {
		got, err := models.ParseEcosystem(string(e))
		require.NoError(t, err)
		require.Equal(t, e, got)
		require.NotEmpty(t, got.ManifestName())
	}

	_, err := models.ParseEcosystem("cargo")
	require.ErrorIs(t, err, models.ErrUnsupportedEcosystem)
	require.EqualError(t, err, "unsupported manifest type: cargo")
}

func TestEcosystemBehavior(t *testing.T) {
	t.Parallel()

	var testCases = []struct {
		eco      models.Ecosystem
		strategy models.Strategy
		manifest string
		props    models.PropNames
	}{
		{models.EcosystemNpm, models.StrategyProperties, "package.json", models.PropNames{Name: "npm.name", Version: "npm.version"}},
		{models.EcosystemNuGet, models.StrategyProperties, "nuget.csproj", models.PropNames{Name: "nuget.title", Version: "nuget.version"}},
		{models.EcosystemPyPI, models.StrategyProperties, "requirements.txt", models.PropNames{Name: "pypi.name", Version: "pypi.version"}},
		{models.EcosystemMaven2, models.StrategyJarFilename, "pom.xml", models.PropNames{}},
		{models.EcosystemGo, models.StrategyGoProxy, "go.mod", models.PropNames{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.eco), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.strategy, tc.eco.Strategy())
			require.Equal(t, tc.manifest, tc.eco.ManifestName())
			require.Equal(t, tc.props, tc.eco.DefaultProps())
		})
	}
}

func TestMapping(t *testing.T) {
	t.Parallel()

	m := models.NewMapping()
	m.Set(models.Dependency{Name: "a", Version: "1"})
	m.Set(models.Dependency{Name: "b", Version: "1"})
	m.Set(models.Dependency{Name: "a", Version: "2"})

	require.Equal(t, 2, m.Len())
	require.Equal(t, []models.Dependency{
		{Name: "a", Version: "2"},
		{Name: "b", Version: "1"},
	}, m.All())
}

func TestScanRecordProp(t *testing.T) {
	t.Parallel()

	r := models.ScanRecord{Props: map[string][]string{
		"npm.name":    {"foo", "bar"},
		"npm.version": {},
	}}
	v, ok := r.Prop("npm.name")
	require.True(t, ok)
	require.Equal(t, "foo", v)
	_, ok = r.Prop("npm.version")
	require.False(t, ok)
	_, ok = r.Prop("missing")
	require.False(t, ok)
}

func TestLoadConfigTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scan2manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
sbom = true

[props.npm]
name = "npm.id"

[nuget]
target_framework = "net8.0"

[maven]
default_group = "com.example"
`), 0644))

	cfg, err := models.LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.SBOM)
	require.Equal(t, "net8.0", cfg.NuGet.TargetFramework)
	require.Equal(t, "Exe", cfg.NuGet.OutputType)
	require.Equal(t, "com.example", cfg.Maven.DefaultGroup)
	require.Equal(t, "hellofx", cfg.Maven.ArtifactID)
	require.Equal(t, models.PropNames{Name: "npm.id", Version: "npm.version"}, cfg.PropsFor(models.EcosystemNpm))
}

func TestLoadConfigYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scan2manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
verify: true
output_dir: out
props:
  pypi:
    version: pypi.release
go:
  module: example.org/deps
`), 0644))

	cfg, err := models.LoadConfig(path)
	require.NoError(t, err)
	require.True(t, cfg.Verify)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, "example.org/deps", cfg.Go.Module)
	require.Equal(t, "1.22", cfg.Go.GoVersion)
	require.Equal(t, models.PropNames{Name: "pypi.name", Version: "pypi.release"}, cfg.PropsFor(models.EcosystemPyPI))
}

func TestLoadConfig_Fail(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	unknown := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("[props.cargo]\nname = \"x\"\n"), 0644))
	_, err := models.LoadConfig(unknown)
	require.ErrorIs(t, err, models.ErrUnsupportedEcosystem)

	_, err = models.LoadConfig(filepath.Join(dir, "config.json"))
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("props: [\n"), 0644))
	_, err = models.LoadConfig(broken)
	require.Error(t, err)
}
