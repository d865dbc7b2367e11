package parsers_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethanolivertroy/scan2manifest/internal/emitter"
	"github.com/ethanolivertroy/scan2manifest/internal/models"
	"github.com/ethanolivertroy/scan2manifest/internal/parsers"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	var testCases = []struct {
		eco  models.Ecosystem
		deps []models.Dependency
	}{
		{
			eco: models.EcosystemNpm,
			deps: []models.Dependency{
				{Name: "@types/node", Version: "20.1.0"},
				{Name: "left-pad", Version: "1.3.0"},
			},
		},
		{
			eco: models.EcosystemNuGet,
			deps: []models.Dependency{
				{Name: "Newtonsoft.Json", Version: "13.0.3"},
				{Name: "Serilog", Version: "3.1.1"},
			},
		},
		{
			eco: models.EcosystemPyPI,
			deps: []models.Dependency{
				{Name: "requests", Version: "2.31.0"},
				{Name: "zope.interface", Version: "6.1"},
			},
		},
		{
			eco: models.EcosystemMaven2,
			deps: []models.Dependency{
				{Name: "guava", Version: "31.1.0", Group: "org.apache.maven"},
				{Name: "junit", Version: "4.13.2", Group: "org.apache.maven"},
			},
		},
		{
			eco: models.EcosystemGo,
			deps: []models.Dependency{
				{Name: "github.com/spf13/cobra", Version: "v1.10.2"},
				{Name: "golang.org/x/mod", Version: "v0.31.0"},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(string(tc.eco), func(t *testing.T) {
			t.Parallel()
			m := models.NewMapping()
			for _, d := range tc.deps {
				m.Set(d)
			}
			res, err := emitter.Emit(context.Background(), m, tc.eco, t.TempDir(), nil)
			require.NoError(t, err)

			got, err := parsers.ParseFile(res.Path)
			require.NoError(t, err)
			require.Equal(t, tc.deps, got)
		})
	}
}

func TestPythonRequirementsParser(t *testing.T) {
	t.Parallel()

	content := []byte(`# pinned
flask==3.0.0
-r other.txt
Django >= 4.2  # comment
six
`)
	deps, err := (&parsers.PythonRequirementsParser{}).Parse("requirements.txt", content)
	require.NoError(t, err)
	require.Equal(t, []models.Dependency{
		{Name: "flask", Version: "3.0.0"},
		{Name: "Django", Version: "4.2"},
		{Name: "six"},
	}, deps)

	for _, line := range []string{"not a requirement!", "foo==", "foo===", "foo=1.0", "foo<>1.0"} {
		_, err = (&parsers.PythonRequirementsParser{}).Parse("requirements.txt", []byte(line+"\n"))
		require.Error(t, err, line)
	}
}

func TestNodePackageJSONParser(t *testing.T) {
	t.Parallel()

	content := []byte(`{"dependencies": {"zod": "^3.22.4"}, "devDependencies": {"jest": "~29.7.0"}}`)
	deps, err := (&parsers.NodePackageJSONParser{}).Parse("package.json", content)
	require.NoError(t, err)
	require.Equal(t, []models.Dependency{
		{Name: "jest", Version: "29.7.0"},
		{Name: "zod", Version: "3.22.4"},
	}, deps)
}

func TestGoModParserIndirect(t *testing.T) {
	t.Parallel()

	content := []byte(`module example.com/m

go 1.22

require (
	github.com/spf13/cobra v1.10.2
	github.com/spf13/pflag v1.0.9 // indirect
)
`)
	deps, err := (&parsers.GoModParser{}).Parse("go.mod", content)
	require.NoError(t, err)
	require.Equal(t, []models.Dependency{{Name: "github.com/spf13/cobra", Version: "v1.10.2"}}, deps)
}

func TestForFile(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"package.json", "nuget.csproj", "requirements.txt", "pom.xml", "go.mod", "dev-requirements.txt"} {
		_, ok := parsers.ForFile(filepath.Join("some", "dir", name))
		require.True(t, ok, name)
	}
	_, ok := parsers.ForFile("Cargo.toml")
	require.False(t, ok)

	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	_, err := parsers.ParseFile(path)
	require.ErrorIs(t, err, models.ErrUnsupportedEcosystem)
}
