package emitter

import (
	"bytes"
	"encoding/json"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// NpmEncoder outputs a package.json holding only a dependencies object
type NpmEncoder struct{}

type packageJSON struct {
	Dependencies orderedVersions `json:"dependencies"`
}

// orderedVersions marshals name -> version pairs in mapping order
type orderedVersions []models.Dependency

func (o orderedVersions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.Version)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode generates package.json content for deps
func (e *NpmEncoder) Encode(deps *models.Mapping) ([]byte, []models.Dependency, error) {
	all := deps.All()
	data, err := json.MarshalIndent(packageJSON{Dependencies: all}, "", "  ")
	if err != nil {
		return nil, nil, err
	}
	return append(data, '\n'), all, nil
}
