package deployer

import (
	"sort"

	jsoniter "github.com/json-iterator/go"
)

// HostPort returns the first host port published for spec.
func (container *Container) HostPort(spec string) (int, bool) {
	bindings := container.Ports[spec]

	if len(bindings) == 0 {
		return 0, false
	}

	return bindings[0].HostPort, true
}

func (container *Container) HostPorts(spec string) []HostBinding {
	return container.Ports[spec]
}

// PortSpecs lists the resolved port specs in lexical order.
func (container *Container) PortSpecs() []string {
	specs := make([]string, 0, len(container.Ports))

	for spec := range container.Ports {
		specs = append(specs, spec)
	}

	sort.Strings(specs)

	return specs
}

func (container *Container) ImageReference() string {
	return container.Image.String()
}

func (container *Container) ToJson() ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	return json.Marshal(struct {
		*Container
		Image string `json:"image"`
	}{
		Container: container,
		Image:     container.Image.String(),
	})
}
