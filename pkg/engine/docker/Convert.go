package docker

import (
	"strings"
	"time"

	TDTypes "github.com/docker/docker/api/types"
	"github.com/docker/go-connections/nat"
	"github.com/simplecontainer/deployer/pkg/engine"
)

func toInspection(inspected TDTypes.ContainerJSON) *engine.Inspection {
	inspection := &engine.Inspection{}

	if inspected.ContainerJSONBase != nil {
		inspection.ID = inspected.ID
		inspection.Name = strings.TrimPrefix(inspected.Name, "/")
		inspection.Image = inspected.Image

		if inspected.State != nil {
			inspection.State = engine.State{
				Status:     inspected.State.Status,
				Running:    inspected.State.Running,
				ExitCode:   inspected.State.ExitCode,
				StartedAt:  parseTime(inspected.State.StartedAt),
				FinishedAt: parseTime(inspected.State.FinishedAt),
				Error:      inspected.State.Error,
			}
		}
	}

	if inspected.Config != nil && inspected.Config.Image != "" {
		inspection.Image = inspected.Config.Image
	}

	if inspected.NetworkSettings != nil {
		inspection.Ports = toBindings(inspected.NetworkSettings.Ports)
	}

	return inspection
}

func toBindings(ports nat.PortMap) map[string][]engine.Binding {
	if ports == nil {
		return nil
	}

	bindings := make(map[string][]engine.Binding, len(ports))

	for port, natBindings := range ports {
		list := make([]engine.Binding, 0, len(natBindings))

		for _, binding := range natBindings {
			list = append(list, engine.Binding{HostIP: binding.HostIP, HostPort: binding.HostPort})
		}

		bindings[string(port)] = list
	}

	return bindings
}

// parseTime returns the zero time for the engine's "0001-01-01T00:00:00Z"
// and for anything unparsable.
func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)

	if err != nil {
		return time.Time{}
	}

	return parsed
}
