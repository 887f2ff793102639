package docker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	IDClient "github.com/docker/docker/client"
	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/simplecontainer/deployer/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	inspectResponse = `{
  "Id": "0a1b2c",
  "Name": "/cassandra-1",
  "State": {"Status": "running", "Running": true, "ExitCode": 0, "StartedAt": "2024-05-01T10:00:00Z", "FinishedAt": "0001-01-01T00:00:00Z"},
  "Config": {"Image": "cassandra:3.0.2"},
  "NetworkSettings": {"Ports": {"9042/tcp": [{"HostIp": "0.0.0.0", "HostPort": "32768"}]}}
}`
	imagesResponse = `[{"Id": "sha256:ffff", "RepoTags": ["cassandra:3.0.2", "reg.example.com:5000/team/app:v1"]}]`
	pullResponse   = `{"status": "Pulling from library/cassandra", "id": "3.0.2"}
{"status": "Downloading", "id": "f1f2", "progressDetail": {"current": 10, "total": 100}}
{"status": "Status: Downloaded newer image for cassandra:3.0.2"}
`
	pullFailure = `{"status": "Pulling from team/app", "id": "v2"}
{"errorDetail": {"message": "manifest unknown"}, "error": "manifest unknown"}
`
)

func newFakeEngine(t *testing.T, handler http.HandlerFunc) *Docker {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	host := "tcp://" + strings.TrimPrefix(server.URL, "http://")
	endpoint := configuration.HttpEndpoint{Host: "127.0.0.1", Port: 2375}

	docker := NewWithPool(endpoint, NewPool(func() (*IDClient.Client, error) {
		return IDClient.NewClientWithOpts(IDClient.WithHost(host), IDClient.WithVersion("1.45"))
	}), nil)

	t.Cleanup(func() { _ = docker.Close() })

	return docker
}

func TestInspectContainer(t *testing.T) {
	docker := newFakeEngine(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/containers/0a1b2c/json") {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(inspectResponse))
	})

	inspection, err := docker.InspectContainer(context.Background(), "0a1b2c")

	require.NoError(t, err)
	assert.True(t, inspection.State.Running)
	assert.Equal(t, "cassandra-1", inspection.Name)
	assert.Equal(t, "cassandra:3.0.2", inspection.Image)
	assert.Equal(t, []engine.Binding{{HostIP: "0.0.0.0", HostPort: "32768"}}, inspection.Ports["9042/tcp"])
}

func TestIsImagePresent(t *testing.T) {
	docker := newFakeEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(imagesResponse))
	})

	testCases := []struct {
		name      string
		reference string
		wanted    bool
	}{
		{"Cached", "cassandra:3.0.2", true},
		{"Cached with explicit hub", "docker.io/library/cassandra:3.0.2", true},
		{"Cached in private registry", "reg.example.com:5000/team/app:v1", true},
		{"Other tag", "cassandra:3.11", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			present, err := docker.IsImagePresent(context.Background(), tc.reference)

			require.NoError(t, err)
			assert.Equal(t, tc.wanted, present)
		})
	}
}

func TestPull(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		statuses []string
		failed   bool
	}{
		{
			"Successful pull",
			pullResponse,
			[]string{"Pulling from library/cassandra", "Downloading", "Status: Downloaded newer image for cassandra:3.0.2"},
			false,
		},
		{
			"Failed pull",
			pullFailure,
			[]string{"Pulling from team/app", ""},
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			docker := newFakeEngine(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			})

			progress, err := docker.Pull(context.Background(), "cassandra:3.0.2")
			require.NoError(t, err)

			statuses := make([]string, 0)
			var last engine.Progress

			for event := range progress {
				statuses = append(statuses, event.Status)
				last = event
			}

			assert.Equal(t, tc.statuses, statuses)
			assert.Equal(t, tc.failed, last.Err != nil)
		})
	}
}

func TestRemoteFailureIsWrapped(t *testing.T) {
	docker := newFakeEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "No such container: 0a1b2c"}`))
	})

	err := docker.StartContainer(context.Background(), "0a1b2c")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start container 0a1b2c")
	assert.True(t, IDClient.IsErrNotFound(err))
}
