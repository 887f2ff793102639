package deployer

import (
	"sync"
	"time"

	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/simplecontainer/deployer/pkg/engine"
	"github.com/simplecontainer/deployer/pkg/image"
	"go.uber.org/zap"
)

// Deployer drives one engine endpoint and owns the containers it started.
type Deployer struct {
	Endpoint     configuration.Endpoint
	Engine       engine.Engine
	PollInterval time.Duration

	registry *Registry
	logger   *zap.Logger
}

// Container is the handle of a container confirmed running. It is not
// modified after Deploy returns it.
type Container struct {
	ID    string                   `json:"id"`
	Name  string                   `json:"name"`
	Image image.Image              `json:"-"`
	Host  string                   `json:"host"`
	Ports map[string][]HostBinding `json:"ports"`
	Trace string                   `json:"trace"`
}

type HostBinding struct {
	HostIP   string `json:"hostIp"`
	HostPort int    `json:"hostPort"`
}

// Registry refuses new containers once sealed.
type Registry struct {
	containers map[string]*Container
	closed     bool
	lock       sync.RWMutex
}
