package engine

import (
	"context"
	"time"

	"github.com/simplecontainer/deployer/pkg/deployment"
)

//go:generate mockgen -source=Type.go -destination=mock/Engine.go -package=mock_engine

// Engine issues single remote operations against one container engine. It
// never retries, every failure is returned as is.
type Engine interface {
	// Pull starts pulling reference and streams its progress. The channel is
	// closed when the pull ends, a failed pull delivers a Progress with Err set.
	Pull(ctx context.Context, reference string) (<-chan Progress, error)
	IsImagePresent(ctx context.Context, reference string) (bool, error)
	CreateContainer(ctx context.Context, payload *deployment.Payload) (string, error)
	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string, graceSeconds int) error
	KillContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string) error
	InspectContainer(ctx context.Context, id string) (*Inspection, error)
	Close() error
}

type Progress struct {
	ID       string
	Status   string
	Progress string
	Err      error
}

type Inspection struct {
	ID    string
	Name  string
	Image string
	State State

	// Ports is nil when the engine reported no port mapping at all.
	Ports map[string][]Binding
}

type State struct {
	Status     string
	Running    bool
	ExitCode   int
	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
}

type Binding struct {
	HostIP   string
	HostPort string
}
