package extract

import (
	"fmt"
	"path"
	"strings"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

// fromGoProxyPath parses the GOPROXY layout <module>/@v/<version>.<ext>
// used by Artifactory Go repositories. Module paths and versions are stored
// in their case-escaped form.
func fromGoProxyPath(p string) (models.Dependency, error) {
	escMod, file, ok := strings.Cut(p, "/@v/")
	if !ok || escMod == "" {
		return models.Dependency{}, fmt.Errorf("%w: %s is not a module proxy path", models.ErrNoMatch, p)
	}

	ext := path.Ext(file)
	switch ext {
	case ".zip", ".mod", ".info":
	default:
		// list and latest index files
		return models.Dependency{}, fmt.Errorf("%w: %s is not a module version file", models.ErrNoMatch, file)
	}

	modPath, err := module.UnescapePath(strings.TrimPrefix(escMod, "/"))
	if err != nil {
		return models.Dependency{}, fmt.Errorf("%w: %w", models.ErrNoMatch, err)
	}
	version, err := module.UnescapeVersion(strings.TrimSuffix(file, ext))
	if err != nil {
		return models.Dependency{}, fmt.Errorf("%w: %w", models.ErrNoMatch, err)
	}

	if !semver.IsValid(version) {
		return models.Dependency{}, fmt.Errorf("%w: invalid version %q", models.ErrNoMatch, version)
	}
	modPath, err = trimRepoPrefix(modPath)
	if err != nil {
		return models.Dependency{}, fmt.Errorf("%w: %w", models.ErrNoMatch, err)
	}

	return models.Dependency{Name: modPath, Version: version}, nil
}

// trimRepoPrefix drops leading segments such as the repository key
// (go-remote/github.com/x/y) until a valid module path remains
func trimRepoPrefix(modPath string) (string, error) {
	err := module.CheckPath(modPath)
	for rest := modPath; err != nil; {
		_, next, ok := strings.Cut(rest, "/")
		if !ok {
			return "", err
		}
		rest = next
		if module.CheckPath(rest) == nil {
			return rest, nil
		}
	}
	return modPath, nil
}
