package deployer

import (
	"strconv"

	"github.com/simplecontainer/deployer/pkg/engine"
)

// Remap resolves the host bindings the engine assigned to every port spec of
// interest. Any spec the engine did not publish is a configuration error.
func Remap(containerID string, reported map[string][]engine.Binding, interest []string) (map[string][]HostBinding, error) {
	resolved := make(map[string][]HostBinding, len(interest))

	if len(interest) == 0 {
		return resolved, nil
	}

	if reported == nil {
		return nil, &PortError{ContainerID: containerID, Reason: ERROR_NO_PORT_MAPPING}
	}

	for _, spec := range interest {
		bindings, ok := reported[spec]

		if !ok || len(bindings) == 0 {
			return nil, &PortError{Port: spec, ContainerID: containerID, Reason: ERROR_MISSING_PORT_BINDING}
		}

		list := make([]HostBinding, 0, len(bindings))

		for _, binding := range bindings {
			port, err := strconv.Atoi(binding.HostPort)

			if err != nil {
				return nil, &PortError{Port: spec, ContainerID: containerID, Reason: err}
			}

			list = append(list, HostBinding{HostIP: binding.HostIP, HostPort: port})
		}

		resolved[spec] = list
	}

	return resolved, nil
}
