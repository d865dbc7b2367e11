package extract

import (
	"fmt"
	"strings"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// fromJarPath parses <name>-<version>.jar from the last path segment.
// Names or versions containing a dash are not supported and don't match.
func fromJarPath(path, group string) (models.Dependency, error) {
	file := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		file = path[idx+1:]
	}

	base, ok := strings.CutSuffix(file, ".jar")
	if !ok {
		return models.Dependency{}, fmt.Errorf("%w: %s is not a jar", models.ErrNoMatch, file)
	}
	if strings.Count(base, "-") != 1 {
		return models.Dependency{}, fmt.Errorf("%w: %s is not <name>-<version>.jar", models.ErrNoMatch, file)
	}

	name, version, _ := strings.Cut(base, "-")
	return models.Dependency{
		Name:    name,
		Version: version,
		Group:   group,
	}, nil
}
