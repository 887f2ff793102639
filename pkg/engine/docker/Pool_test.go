package docker

import (
	"context"
	"errors"
	"sync"
	"testing"

	IDClient "github.com/docker/docker/client"
	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/simplecontainer/deployer/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolObtain(t *testing.T) {
	connections := 0

	pool := NewPool(func() (*IDClient.Client, error) {
		connections++
		return IDClient.NewClientWithOpts(IDClient.WithHost("tcp://127.0.0.1:2375"))
	})

	ctx := context.Background()

	first, err := pool.Obtain(ctx)
	require.NoError(t, err)

	second, err := pool.Obtain(ctx)
	require.NoError(t, err)

	other, err := pool.Obtain(engine.WithToken(ctx, "worker-1"))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, connections)
	assert.Equal(t, 2, pool.Size())

	require.NoError(t, pool.Close())
	assert.Equal(t, 0, pool.Size())

	_, err = pool.Obtain(ctx)
	assert.ErrorIs(t, err, ERROR_POOL_CLOSED)
}

func TestPoolConcurrentFirstUse(t *testing.T) {
	var lock sync.Mutex
	connections := 0

	pool := NewPool(func() (*IDClient.Client, error) {
		lock.Lock()
		connections++
		lock.Unlock()

		return IDClient.NewClientWithOpts(IDClient.WithHost("tcp://127.0.0.1:2375"))
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pool.Obtain(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, connections)
}

func TestPoolConnectFailure(t *testing.T) {
	failure := errors.New("no route to host")

	pool := NewPool(func() (*IDClient.Client, error) {
		return nil, failure
	})

	_, err := pool.Obtain(context.Background())

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 0, pool.Size())
}

func TestConnect(t *testing.T) {
	testCases := []struct {
		name     string
		endpoint configuration.Endpoint
		host     string
	}{
		{"Http", configuration.HttpEndpoint{Host: "192.168.56.101", Port: 2375}, "tcp://192.168.56.101:2375"},
		{"Unix", configuration.UnixEndpoint{Path: "/var/run/docker.sock"}, "unix:///var/run/docker.sock"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cli, err := Connect(tc.endpoint)

			require.NoError(t, err)
			assert.Equal(t, tc.host, cli.DaemonHost())
		})
	}
}

func TestConnectMissingCertificates(t *testing.T) {
	_, err := Connect(configuration.HttpsEndpoint{Host: "192.168.56.101", Port: 2376, CertPath: t.TempDir()})

	assert.Error(t, err)
}
