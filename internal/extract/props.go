package extract

import (
	"fmt"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

func fromProps(r models.ScanRecord, props models.PropNames) (models.Dependency, error) {
	name, ok := r.Prop(props.Name)
	if !ok {
		return models.Dependency{}, fmt.Errorf("%w: %s", models.ErrMissingProps, props.Name)
	}
	version, ok := r.Prop(props.Version)
	if !ok {
		return models.Dependency{}, fmt.Errorf("%w: %s", models.ErrMissingProps, props.Version)
	}
	return models.Dependency{Name: name, Version: version}, nil
}
