package harness

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/simplecontainer/deployer/pkg/deployer"
	"github.com/simplecontainer/deployer/pkg/engine/docker"
	"github.com/simplecontainer/deployer/pkg/image"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Harness wires a Deployer against one configured endpoint for the lifetime
// of a test. Containers left running are killed when the test ends.
type Harness struct {
	Config   *configuration.Configuration
	Endpoint configuration.Endpoint
	Deployer *deployer.Deployer
	Images   *image.Images
}

type Options struct {
	// ConfigPath overrides the lookup of the configuration document.
	ConfigPath string
	// EndpointID selects an endpoint instead of picking one at random.
	EndpointID string
	Logger     *zap.Logger
}

func New(t testing.TB, options Options) *Harness {
	t.Helper()

	path := options.ConfigPath

	if path == "" {
		var err error
		path, err = configuration.Locate()

		if err != nil {
			t.Fatalf("locating deployer configuration: %v", err)
		}
	}

	config, err := configuration.Load(path)

	if err != nil {
		t.Fatalf("loading deployer configuration %s: %v", path, err)
	}

	var endpoint configuration.Endpoint

	if options.EndpointID != "" {
		var found bool
		endpoint, found = config.Find(options.EndpointID)

		if !found {
			t.Fatalf("api %q is not configured in %s", options.EndpointID, path)
		}
	} else {
		endpoint, err = config.Pick()

		if err != nil {
			t.Fatalf("picking api endpoint: %v", err)
		}
	}

	log := options.Logger
	if log == nil {
		log = zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel))
	}

	h := &Harness{
		Config:   config,
		Endpoint: endpoint,
		Deployer: deployer.New(endpoint, docker.New(endpoint, log), log),
		Images:   config.Images(),
	}

	t.Cleanup(func() {
		if err := h.Deployer.Close(); err != nil {
			t.Logf("closing deployer: %v", err)
		}
	})

	return h
}

// Name returns a container name unique to this run.
func Name(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}
