package emitter

import (
	"strings"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// PyPIEncoder outputs a requirements.txt with pinned versions
type PyPIEncoder struct{}

// Encode generates one name==version line per dependency
func (e *PyPIEncoder) Encode(deps *models.Mapping) ([]byte, []models.Dependency, error) {
	var sb strings.Builder
	all := deps.All()
	for _, d := range all {
		sb.WriteString(d.Name)
		sb.WriteString("==")
		sb.WriteString(d.Version)
		sb.WriteString("\n")
	}
	return []byte(sb.String()), all, nil
}
