package models

// ScanRecord is one entry of an Artifactory scan report
type ScanRecord struct {
	Path  string              `json:"path"`
	Props map[string][]string `json:"props"`
}

// Prop returns the first value of the named property
func (r ScanRecord) Prop(name string) (string, bool) {
	values, ok := r.Props[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
