package deployment

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	TDContainer "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/go-connections/nat"
	"github.com/mattn/go-shellwords"
	"github.com/simplecontainer/deployer/pkg/image"
	"github.com/simplecontainer/deployer/pkg/static"
)

func New() *Deployment {
	return &Deployment{
		volumes:     make([]string, 0),
		env:         make([]string, 0),
		ports:       make([]Port, 0),
		exposed:     make([]string, 0),
		dns:         make([]string, 0),
		dnsSearch:   make([]string, 0),
		extraHosts:  make([]string, 0),
		labels:      make(map[string]string),
		securityOpt: make([]string, 0),
	}
}

func (d *Deployment) Name(name string) *Deployment {
	d.name = name
	return d
}

func (d *Deployment) Hostname(hostname string) *Deployment {
	d.hostname = hostname
	return d
}

func (d *Deployment) WorkDir(dir string) *Deployment {
	d.workDir = dir
	return d
}

func (d *Deployment) User(user string) *Deployment {
	d.user = user
	return d
}

// Volume adds a hostPath:containerPath bind.
func (d *Deployment) Volume(hostPath string, containerPath string) *Deployment {
	d.volumes = append(d.volumes, fmt.Sprintf("%s:%s", hostPath, containerPath))
	return d
}

// Volumes adds already formatted bind strings.
func (d *Deployment) Volumes(binds ...string) *Deployment {
	d.volumes = append(d.volumes, binds...)
	return d
}

// Env adds NAME=VALUE strings as given.
func (d *Deployment) Env(variables ...string) *Deployment {
	d.env = append(d.env, variables...)
	return d
}

func (d *Deployment) EnvPair(name string, value string) *Deployment {
	d.env = append(d.env, fmt.Sprintf("%s=%s", strings.TrimSpace(name), strings.TrimSpace(value)))
	return d
}

// Port binds spec (for example 9042/tcp) to hostPort, zero means any free port.
func (d *Deployment) Port(spec string, hostPort int) *Deployment {
	d.ports = append(d.ports, Port{Spec: spec, HostPort: hostPort})
	return d
}

// ExposedPort declares a port in addition to the ones the image exposes.
func (d *Deployment) ExposedPort(spec string) *Deployment {
	d.exposed = append(d.exposed, spec)
	return d
}

func (d *Deployment) PublishAllPorts(publish bool) *Deployment {
	d.publishAll = &publish
	return d
}

func (d *Deployment) Cmd(args ...string) *Deployment {
	d.cmd = args
	return d
}

// CommandLine splits line the way a shell would and uses it as the command.
func (d *Deployment) CommandLine(line string) *Deployment {
	args, err := shellwords.Parse(line)

	if err != nil {
		d.err = fmt.Errorf("command line %q: %w", line, err)
		return d
	}

	return d.Cmd(args...)
}

func (d *Deployment) Entrypoint(args ...string) *Deployment {
	d.entrypoint = args
	return d
}

func (d *Deployment) EntrypointLine(line string) *Deployment {
	args, err := shellwords.Parse(line)

	if err != nil {
		d.err = fmt.Errorf("entrypoint %q: %w", line, err)
		return d
	}

	return d.Entrypoint(args...)
}

func (d *Deployment) CpuShares(shares int64) *Deployment {
	d.cpuShares = shares
	return d
}

func (d *Deployment) CpuQuota(quota int64) *Deployment {
	d.cpuQuota = quota
	return d
}

// Memory limits memory in bytes. Swap is added on top of it, a negative swap
// leaves swap unlimited.
func (d *Deployment) Memory(memory int64, swap int64) *Deployment {
	d.memory = memory

	if swap < 0 {
		d.memorySwap = -1
	} else {
		d.memorySwap = memory + swap
	}

	return d
}

func (d *Deployment) CgroupParent(parent string) *Deployment {
	d.cgroupParent = parent
	return d
}

func (d *Deployment) NetworkMode(mode string) *Deployment {
	d.networkMode = mode
	return d
}

func (d *Deployment) Dns(servers ...string) *Deployment {
	d.dns = append(d.dns, servers...)
	return d
}

func (d *Deployment) DnsSearch(domains ...string) *Deployment {
	d.dnsSearch = append(d.dnsSearch, domains...)
	return d
}

// ExtraHosts adds host:ip entries to the container's /etc/hosts.
func (d *Deployment) ExtraHosts(hosts ...string) *Deployment {
	d.extraHosts = append(d.extraHosts, hosts...)
	return d
}

func (d *Deployment) Label(key string, value string) *Deployment {
	d.labels[key] = value
	return d
}

func (d *Deployment) SecurityOpt(options ...string) *Deployment {
	d.securityOpt = append(d.securityOpt, options...)
	return d
}

func (d *Deployment) Privileged(privileged bool) *Deployment {
	d.privileged = privileged
	return d
}

func (d *Deployment) Tty(tty bool) *Deployment {
	d.tty = tty
	return d
}

func (d *Deployment) IsFinalized() bool {
	return d.finalized
}

// Finalize produces the creation payload for img. Default binds are placed
// before the binds of the deployment and hostIP is exported to the container
// as DOCKER_HOST_IP.
func (d *Deployment) Finalize(img image.Image, defaults []string, hostIP string) (*Payload, error) {
	if d.finalized {
		return nil, ERROR_ALREADY_FINALIZED
	}

	if d.err != nil {
		return nil, d.err
	}

	if len(d.ports) > 0 && d.publishAll != nil && *d.publishAll {
		return nil, ERROR_PORT_POLICY_CONFLICT
	}

	binds := make([]string, 0, len(defaults)+len(d.volumes))
	binds = append(binds, defaults...)
	binds = append(binds, d.volumes...)

	for _, bind := range binds {
		parts := strings.Split(bind, ":")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: %q", ERROR_INVALID_VOLUME, bind)
		}
	}

	exposed := nat.PortSet{}
	bindings := nat.PortMap{}
	interest := make([]string, 0)

	for _, spec := range append(img.GetExposedPorts(), d.exposed...) {
		port, err := toPort(spec)

		if err != nil {
			return nil, err
		}

		exposed[port] = struct{}{}
	}

	for _, p := range d.ports {
		port, err := toPort(p.Spec)

		if err != nil {
			return nil, err
		}

		if p.HostPort < 0 || p.HostPort > 65535 {
			return nil, fmt.Errorf("%w: host port %d for %s", ERROR_INVALID_PORT, p.HostPort, p.Spec)
		}

		hostPort := ""
		if p.HostPort != 0 {
			hostPort = strconv.Itoa(p.HostPort)
		}

		if _, ok := bindings[port]; !ok {
			interest = append(interest, string(port))
		}

		exposed[port] = struct{}{}
		bindings[port] = append(bindings[port], nat.PortBinding{HostPort: hostPort})
	}

	if len(d.ports) == 0 {
		for _, spec := range append(img.GetExposedPorts(), d.exposed...) {
			port, _ := toPort(spec)
			if !slices.Contains(interest, string(port)) {
				interest = append(interest, string(port))
			}
		}
	}

	publishAll := len(d.ports) == 0 && (d.publishAll == nil || *d.publishAll)

	env := make([]string, 0, len(d.env)+1)
	env = append(env, d.env...)
	if hostIP != "" {
		env = append(env, fmt.Sprintf("%s=%s", static.ENV_DOCKER_HOST_IP, hostIP))
	}

	labels := make(map[string]string, len(d.labels)+1)
	for key, value := range d.labels {
		labels[key] = value
	}
	labels[static.LABEL_MANAGED] = static.LABEL_MANAGED_VALUE

	config := &TDContainer.Config{
		Hostname:     d.hostname,
		User:         d.user,
		WorkingDir:   d.workDir,
		Image:        img.String(),
		Env:          env,
		Labels:       labels,
		Tty:          d.tty,
		ExposedPorts: exposed,
	}

	if len(d.cmd) > 0 {
		config.Cmd = strslice.StrSlice(d.cmd)
	}

	if len(d.entrypoint) > 0 {
		config.Entrypoint = strslice.StrSlice(d.entrypoint)
	}

	host := &TDContainer.HostConfig{
		Binds:           binds,
		PortBindings:    bindings,
		PublishAllPorts: publishAll,
		NetworkMode:     TDContainer.NetworkMode(d.networkMode),
		DNS:             d.dns,
		DNSSearch:       d.dnsSearch,
		ExtraHosts:      d.extraHosts,
		SecurityOpt:     d.securityOpt,
		Privileged:      d.privileged,
		Resources: TDContainer.Resources{
			CPUShares:    d.cpuShares,
			CPUQuota:     d.cpuQuota,
			Memory:       d.memory,
			MemorySwap:   d.memorySwap,
			CgroupParent: d.cgroupParent,
		},
	}

	d.finalized = true

	return &Payload{
		Name:   d.name,
		Image:  img.String(),
		Config: config,
		Host:   host,
		Ports:  interest,
	}, nil
}

func toPort(spec string) (nat.Port, error) {
	proto, port := nat.SplitProtoPort(spec)

	if port == "" {
		return "", fmt.Errorf("%w: %q", ERROR_INVALID_PORT, spec)
	}

	natPort, err := nat.NewPort(proto, port)

	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ERROR_INVALID_PORT, spec, err)
	}

	return natPort, nil
}
