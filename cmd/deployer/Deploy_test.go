package main

import (
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/simplecontainer/deployer/pkg/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentFromFlags(t *testing.T) {
	cmd := NewDeployCommand()

	require.NoError(t, cmd.Flags().Parse([]string{
		"--name", "cassandra-1",
		"-e", "MAX_HEAP_SIZE=512M",
		"-v", "/data:/var/lib/cassandra",
		"-p", "19042:9042/tcp",
		"-p", "7000/tcp",
		"--cmd", "cassandra -f",
		"--memory", "1024",
		"--swap", "512",
		"-l", "suite=integration",
	}))

	spec, err := deploymentFromFlags(cmd.Flags())
	require.NoError(t, err)

	payload, err := spec.Finalize(image.New(image.LocalRegistry{}, "", "cassandra", "3.0.2"), nil, "")
	require.NoError(t, err)

	assert.Equal(t, "cassandra-1", payload.Name)
	assert.Equal(t, []string{"MAX_HEAP_SIZE=512M"}, payload.Config.Env)
	assert.Equal(t, []string{"/data:/var/lib/cassandra"}, payload.Host.Binds)
	assert.Equal(t, []nat.PortBinding{{HostPort: "19042"}}, payload.Host.PortBindings["9042/tcp"])
	assert.Equal(t, []nat.PortBinding{{HostPort: ""}}, payload.Host.PortBindings["7000/tcp"])
	assert.False(t, payload.Host.PublishAllPorts)
	assert.Equal(t, []string{"cassandra", "-f"}, []string(payload.Config.Cmd))
	assert.Equal(t, int64(1536), payload.Host.MemorySwap)
	assert.Equal(t, "integration", payload.Config.Labels["suite"])
}

func TestDeploymentFromFlagsInvalidHostPort(t *testing.T) {
	cmd := NewDeployCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"-p", "cql:9042/tcp"}))

	_, err := deploymentFromFlags(cmd.Flags())

	assert.Error(t, err)
}

func TestPublishAllFlag(t *testing.T) {
	cmd := NewDeployCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--expose", "9042/tcp", "--publish-all=false"}))

	spec, err := deploymentFromFlags(cmd.Flags())
	require.NoError(t, err)

	payload, err := spec.Finalize(image.New(image.LocalRegistry{}, "", "cassandra", "3.0.2"), nil, "")
	require.NoError(t, err)

	assert.False(t, payload.Host.PublishAllPorts)
	assert.Equal(t, []string{"9042/tcp"}, payload.Ports)
}
