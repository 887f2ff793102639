package deployment

import (
	"testing"

	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/go-connections/nat"
	"github.com/simplecontainer/deployer/pkg/image"
	"github.com/simplecontainer/deployer/pkg/static"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cassandra = image.New(image.LocalRegistry{}, "", "cassandra", "3.0.2", "9042/tcp", "7000/tcp")

func TestFinalizePortPolicy(t *testing.T) {
	testCases := []struct {
		name       string
		deployment *Deployment
		publishAll bool
		bindings   nat.PortMap
		interest   []string
		err        error
	}{
		{
			"Publish all by default",
			New(),
			true,
			nat.PortMap{},
			[]string{"9042/tcp", "7000/tcp"},
			nil,
		},
		{
			"Publish all disabled",
			New().PublishAllPorts(false),
			false,
			nat.PortMap{},
			[]string{"9042/tcp", "7000/tcp"},
			nil,
		},
		{
			"Explicit binding",
			New().Port("9042/tcp", 19042).Port("9160/tcp", 0),
			false,
			nat.PortMap{
				"9042/tcp": []nat.PortBinding{{HostPort: "19042"}},
				"9160/tcp": []nat.PortBinding{{HostPort: ""}},
			},
			[]string{"9042/tcp", "9160/tcp"},
			nil,
		},
		{
			"Explicit binding with publish all",
			New().Port("9042/tcp", 19042).PublishAllPorts(true),
			false,
			nil,
			nil,
			ERROR_PORT_POLICY_CONFLICT,
		},
		{
			"Invalid port spec",
			New().Port("cql/tcp", 0),
			false,
			nil,
			nil,
			ERROR_INVALID_PORT,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := tc.deployment.Finalize(cassandra, nil, "")

			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.False(t, tc.deployment.IsFinalized())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.publishAll, payload.Host.PublishAllPorts)
			assert.Equal(t, tc.bindings, payload.Host.PortBindings)
			assert.Equal(t, tc.interest, payload.Ports)
		})
	}
}

func TestFinalizeOnce(t *testing.T) {
	deployment := New()

	_, err := deployment.Finalize(cassandra, nil, "")
	require.NoError(t, err)

	_, err = deployment.Finalize(cassandra, nil, "")
	assert.ErrorIs(t, err, ERROR_ALREADY_FINALIZED)
}

func TestFinalizePayload(t *testing.T) {
	payload, err := New().
		Name("cassandra-1").
		Volume("/data", "/var/lib/cassandra").
		EnvPair(" MAX_HEAP_SIZE ", " 512M ").
		Env("HEAP_NEWSIZE=100M").
		CommandLine(`cassandra -f -Dcassandra.config="file:///etc/cassandra a.yaml"`).
		Memory(1024, 512).
		CpuShares(512).
		Label("suite", "integration").
		Finalize(cassandra, []string{"/var/cache:/cache"}, "192.168.56.101")

	require.NoError(t, err)

	assert.Equal(t, "cassandra-1", payload.Name)
	assert.Equal(t, "cassandra:3.0.2", payload.Image)
	assert.Equal(t, "cassandra:3.0.2", payload.Config.Image)
	assert.Equal(t, []string{"/var/cache:/cache", "/data:/var/lib/cassandra"}, payload.Host.Binds)
	assert.Equal(t, []string{"MAX_HEAP_SIZE=512M", "HEAP_NEWSIZE=100M", "DOCKER_HOST_IP=192.168.56.101"}, payload.Config.Env)
	assert.Equal(t, strslice.StrSlice{"cassandra", "-f", "-Dcassandra.config=file:///etc/cassandra a.yaml"}, payload.Config.Cmd)
	assert.Nil(t, payload.Config.Entrypoint)
	assert.Equal(t, int64(1024), payload.Host.Memory)
	assert.Equal(t, int64(1536), payload.Host.MemorySwap)
	assert.Equal(t, int64(512), payload.Host.CPUShares)
	assert.Equal(t, "integration", payload.Config.Labels["suite"])
	assert.Equal(t, static.LABEL_MANAGED_VALUE, payload.Config.Labels[static.LABEL_MANAGED])
	assert.Contains(t, payload.Config.ExposedPorts, nat.Port("9042/tcp"))
	assert.Contains(t, payload.Config.ExposedPorts, nat.Port("7000/tcp"))
}

func TestMemoryUnlimitedSwap(t *testing.T) {
	payload, err := New().Memory(2048, -1).Finalize(cassandra, nil, "")

	require.NoError(t, err)
	assert.Equal(t, int64(2048), payload.Host.Memory)
	assert.Equal(t, int64(-1), payload.Host.MemorySwap)
}

func TestInvalidInput(t *testing.T) {
	_, err := New().CommandLine(`echo "unterminated`).Finalize(cassandra, nil, "")
	assert.Error(t, err)

	_, err = New().Volumes("/only-host").Finalize(cassandra, nil, "")
	assert.ErrorIs(t, err, ERROR_INVALID_VOLUME)

	_, err = New().Finalize(cassandra, []string{":/guest"}, "")
	assert.ErrorIs(t, err, ERROR_INVALID_VOLUME)
}
