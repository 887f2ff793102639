package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
api:
  - type: http
    id: build
    host: 192.168.56.101
    port: 2375
  - type: unix
    id: local
    path: /var/run/docker.sock
override:
  - cassandra.latest: 3.0.2
`

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0644))

	h := New(t, Options{ConfigPath: path, EndpointID: "local"})

	assert.Equal(t, configuration.UnixEndpoint{ID: "local", Path: "/var/run/docker.sock"}, h.Endpoint)
	assert.Equal(t, h.Endpoint, h.Deployer.Endpoint)
	assert.Equal(t, "cassandra:3.0.2", h.Images.Cassandra().ForLatest().String())
	assert.Empty(t, h.Deployer.Containers())
}

func TestName(t *testing.T) {
	first := Name("cassandra")
	second := Name("cassandra")

	assert.True(t, strings.HasPrefix(first, "cassandra-"))
	assert.Len(t, first, len("cassandra-")+8)
	assert.NotEqual(t, first, second)
}
