package bom

import (
	"net/url"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/ethanolivertroy/scan2manifest/internal/models"
)

// PURL returns the package url of d, e.g. pkg:maven/org.apache.maven/guava@31.1.0
func PURL(e models.Ecosystem, d models.Dependency) string {
	var sb strings.Builder
	sb.WriteString("pkg:")
	sb.WriteString(e.PURLType())
	sb.WriteString("/")

	name := d.Name
	switch e {
	case models.EcosystemMaven2:
		if d.Group != "" {
			sb.WriteString(escapeSegments(d.Group))
			sb.WriteString("/")
		}
	case models.EcosystemNpm:
		// scoped packages keep the scope as namespace
		if strings.HasPrefix(name, "@") {
			if scope, rest, ok := strings.Cut(name, "/"); ok {
				sb.WriteString("%40" + url.PathEscape(strings.TrimPrefix(scope, "@")))
				sb.WriteString("/")
				name = rest
			}
		}
	case models.EcosystemPyPI:
		name = strings.ReplaceAll(strings.ToLower(name), "_", "-")
	}

	if e == models.EcosystemGo {
		sb.WriteString(escapeSegments(name))
	} else {
		sb.WriteString(url.PathEscape(name))
	}
	if d.Version != "" {
		sb.WriteString("@")
		sb.WriteString(url.PathEscape(d.Version))
	}
	return sb.String()
}

func escapeSegments(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// Component converts an extracted dependency to a cdx library component
func Component(e models.Ecosystem, d models.Dependency) cdx.Component {
	purl := PURL(e, d)
	return cdx.Component{
		BOMRef:     purl,
		Type:       cdx.ComponentTypeLibrary,
		Group:      d.Group,
		Name:       d.Name,
		Version:    d.Version,
		PackageURL: purl,
	}
}
