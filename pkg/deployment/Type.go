package deployment

import (
	TDContainer "github.com/docker/docker/api/types/container"
)

// Deployment accumulates the options of a container-to-be. It is turned into
// a Payload exactly once by Finalize.
type Deployment struct {
	name     string
	hostname string
	workDir  string
	user     string

	volumes []string
	env     []string

	ports      []Port
	exposed    []string
	publishAll *bool

	cmd        []string
	entrypoint []string

	cpuShares    int64
	cpuQuota     int64
	memory       int64
	memorySwap   int64
	cgroupParent string

	networkMode string
	dns         []string
	dnsSearch   []string
	extraHosts  []string

	labels      map[string]string
	securityOpt []string
	privileged  bool
	tty         bool

	finalized bool
	err       error
}

// Port is an explicit binding of a container port spec to a host port. A zero
// HostPort lets the engine choose.
type Port struct {
	Spec     string
	HostPort int
}

// Payload is the immutable creation request handed to the engine.
type Payload struct {
	Name   string
	Image  string
	Config *TDContainer.Config
	Host   *TDContainer.HostConfig

	// Ports lists the port specs whose host bindings the caller cares about.
	Ports []string
}
