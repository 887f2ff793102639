package formaters

import (
	"fmt"
	"io"
	"strings"

	"github.com/simplecontainer/deployer/pkg/deployer"
	"github.com/simplecontainer/deployer/pkg/engine"
)

func Containers(w io.Writer, containers []*deployer.Container) {
	display := make([]ContainerInformation, 0, len(containers))

	for _, container := range containers {
		info := ContainerInformation{
			ID:    shortID(container.ID),
			Name:  container.Name,
			Image: container.ImageReference(),
			Host:  container.Host,
			Trace: container.Trace,
		}

		ports := make([]string, 0)

		for _, spec := range container.PortSpecs() {
			for _, binding := range container.HostPorts(spec) {
				ports = append(ports, fmt.Sprintf("%s:%d->%s", binding.HostIP, binding.HostPort, spec))
			}
		}

		info.Ports = strings.Join(ports, ", ")

		display = append(display, info)
	}

	tbl := newTable(w, "CONTAINER", "NAME", "IMAGE", "HOST", "PORTS")

	for _, info := range display {
		tbl.AddRow(info.ID, orDash(info.Name), info.Image, info.Host, orDash(info.Ports))
	}

	tbl.Print()
}

func State(w io.Writer, container *deployer.Container, state engine.State) {
	tbl := newTable(w, "CONTAINER", "STATE", "EXIT CODE", "FINISHED", "ERROR")

	finished := "-"
	if !state.FinishedAt.IsZero() {
		finished = state.FinishedAt.Format("2006-01-02 15:04:05")
	}

	tbl.AddRow(shortID(container.ID), orDash(state.Status), state.ExitCode, finished, orDash(state.Error))
	tbl.Print()
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}

	return id
}
