package image

import "github.com/simplecontainer/deployer/pkg/static"

// NewBuilder keeps only the overrides that target repository/name, so ForTag
// only has to compare tags.
func NewBuilder(registry Registry, repository string, name string, exposedPorts []string, overrides []TagOverride) *Builder {
	matching := make([]TagOverride, 0)

	for _, override := range overrides {
		if override.Matches(repository, name) {
			matching = append(matching, override)
		}
	}

	return &Builder{
		registry:     registry,
		repository:   repository,
		name:         name,
		exposedPorts: exposedPorts,
		overrides:    matching,
	}
}

func (builder *Builder) ForTag(tag string) Image {
	resolved := tag

	for _, override := range builder.overrides {
		if override.Tag == tag {
			resolved = override.Override
			break
		}
	}

	return New(builder.registry, builder.repository, builder.name, resolved, builder.exposedPorts...)
}

func (builder *Builder) ForMaster() Image {
	return builder.ForTag(static.TAG_MASTER)
}

func (builder *Builder) ForLatest() Image {
	return builder.ForTag(static.TAG_LATEST)
}

func (override TagOverride) Matches(repository string, name string) bool {
	return override.Repository == repository && override.Name == name
}
