package formaters

import (
	"io"
	"strings"

	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/simplecontainer/deployer/pkg/image"
)

func Endpoints(w io.Writer, endpoints []configuration.Endpoint) {
	tbl := newTable(w, "API", "TYPE", "URI", "HOST", "VOLUMES")

	for _, endpoint := range endpoints {
		info := EndpointInformation{
			ID:      endpoint.Identifier(),
			Kind:    endpoint.Kind(),
			URI:     endpoint.URI(),
			Host:    endpoint.Hostname(),
			Volumes: strings.Join(endpoint.DefaultVolumes(), ", "),
		}

		tbl.AddRow(orDash(info.ID), info.Kind, info.URI, info.Host, orDash(info.Volumes))
	}

	tbl.Print()
}

func Overrides(w io.Writer, registry image.Registry, overrides []image.TagOverride) {
	tbl := newTable(w, "IMAGE", "TAG", "OVERRIDE")

	for _, override := range overrides {
		tbl.AddRow(image.New(registry, override.Repository, override.Name, override.Tag).String(), override.Tag, override.Override)
	}

	tbl.Print()
}
