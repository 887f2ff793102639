package image

import (
	"fmt"
	"strings"
)

const (
	REPOSITORY_DELIMITER = "/"
	TAG_DELIMITER        = ":"
)

func New(registry Registry, repository string, name string, tag string, exposedPorts ...string) Image {
	ports := make([]string, len(exposedPorts))
	copy(ports, exposedPorts)

	return Image{
		Registry:     registry,
		Repository:   repository,
		Name:         name,
		Tag:          tag,
		ExposedPorts: ports,
	}
}

// String renders registry/repository/name:tag, the repository segment is
// omitted when absent.
func (image Image) String() string {
	var builder strings.Builder

	if image.Registry != nil {
		builder.WriteString(image.Registry.ConnectionString())
	}

	if image.Repository != "" {
		builder.WriteString(image.Repository)
		builder.WriteString(REPOSITORY_DELIMITER)
	}

	builder.WriteString(image.Name)
	builder.WriteString(TAG_DELIMITER)
	builder.WriteString(image.Tag)

	return builder.String()
}

func (image Image) WithTag(tag string) Image {
	return New(image.Registry, image.Repository, image.Name, tag, image.ExposedPorts...)
}

func (image Image) GetExposedPorts() []string {
	ports := make([]string, len(image.ExposedPorts))
	copy(ports, image.ExposedPorts)
	return ports
}

func (registry RemoteRegistry) ConnectionString() string {
	return fmt.Sprintf("%s:%d/", registry.Host, registry.Port)
}

func (registry LocalRegistry) ConnectionString() string {
	return ""
}

func (connection Connection) ConnectionString() string {
	return string(connection)
}

// Parse splits a reference of the form [registry/][repository/]name[:tag].
// The first segment is treated as a registry when it looks like a host, the
// same heuristic the engine applies.
func Parse(reference string) (Image, error) {
	if reference == "" {
		return Image{}, ERROR_EMPTY_REFERENCE
	}

	rest := reference
	tag := ""

	slash := strings.LastIndex(rest, REPOSITORY_DELIMITER)
	if colon := strings.LastIndex(rest, TAG_DELIMITER); colon > slash {
		tag = rest[colon+1:]
		rest = rest[:colon]
	}

	if tag == "" {
		tag = "latest"
	}

	parts := strings.Split(rest, REPOSITORY_DELIMITER)

	var registry Registry = LocalRegistry{}
	if len(parts) > 1 && isRegistryHost(parts[0]) {
		registry = Connection(parts[0] + REPOSITORY_DELIMITER)
		parts = parts[1:]
	}

	name := parts[len(parts)-1]
	repository := strings.Join(parts[:len(parts)-1], REPOSITORY_DELIMITER)

	if name == "" {
		return Image{}, fmt.Errorf("%w: %s", ERROR_INVALID_REFERENCE, reference)
	}

	return New(registry, repository, name, tag), nil
}

func isRegistryHost(segment string) bool {
	return strings.ContainsAny(segment, ".:") || segment == "localhost"
}
