package docker

import (
	"sync"

	IDClient "github.com/docker/docker/client"
	"github.com/simplecontainer/deployer/pkg/configuration"
	"go.uber.org/zap"
)

const (
	CA_FILE   = "ca.pem"
	CERT_FILE = "cert.pem"
	KEY_FILE  = "key.pem"

	KILL_SIGNAL = "SIGKILL"
)

// Docker implements engine.Engine on top of the docker SDK.
type Docker struct {
	Endpoint configuration.Endpoint
	Pool     *Pool
	logger   *zap.Logger
}

// Pool holds one client per execution-context token.
type Pool struct {
	clients map[string]*IDClient.Client
	connect func() (*IDClient.Client, error)
	lock    sync.Mutex
	closed  bool
}
