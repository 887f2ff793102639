package docker

import (
	"context"

	TDContainer "github.com/docker/docker/api/types/container"
	IDClient "github.com/docker/docker/client"
	"github.com/pkg/errors"
	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/simplecontainer/deployer/pkg/deployment"
	"github.com/simplecontainer/deployer/pkg/engine"
	"github.com/simplecontainer/deployer/pkg/logger"
	"go.uber.org/zap"
	"k8s.io/utils/ptr"
)

func New(endpoint configuration.Endpoint, log *zap.Logger) *Docker {
	log = logger.OrNop(log).With(zap.String("endpoint", endpoint.URI()))

	return &Docker{
		Endpoint: endpoint,
		Pool: NewPool(func() (*IDClient.Client, error) {
			log.Debug("opening engine connection")
			return Connect(endpoint)
		}),
		logger: log,
	}
}

// NewWithPool is used when the clients are built elsewhere, tests point the
// pool at a fake engine.
func NewWithPool(endpoint configuration.Endpoint, pool *Pool, log *zap.Logger) *Docker {
	return &Docker{
		Endpoint: endpoint,
		Pool:     pool,
		logger:   logger.OrNop(log),
	}
}

func (docker *Docker) CreateContainer(ctx context.Context, payload *deployment.Payload) (string, error) {
	cli, err := docker.Pool.Obtain(ctx)

	if err != nil {
		return "", err
	}

	resp, err := cli.ContainerCreate(ctx, payload.Config, payload.Host, nil, nil, payload.Name)

	if err != nil {
		return "", errors.Wrapf(err, "create container from %s", payload.Image)
	}

	for _, warning := range resp.Warnings {
		docker.logger.Warn("engine warning on create", zap.String("container", resp.ID), zap.String("warning", warning))
	}

	return resp.ID, nil
}

func (docker *Docker) StartContainer(ctx context.Context, id string) error {
	cli, err := docker.Pool.Obtain(ctx)

	if err != nil {
		return err
	}

	return errors.Wrapf(cli.ContainerStart(ctx, id, TDContainer.StartOptions{}), "start container %s", id)
}

func (docker *Docker) StopContainer(ctx context.Context, id string, graceSeconds int) error {
	cli, err := docker.Pool.Obtain(ctx)

	if err != nil {
		return err
	}

	return errors.Wrapf(cli.ContainerStop(ctx, id, TDContainer.StopOptions{Timeout: ptr.To(graceSeconds)}), "stop container %s", id)
}

func (docker *Docker) KillContainer(ctx context.Context, id string) error {
	cli, err := docker.Pool.Obtain(ctx)

	if err != nil {
		return err
	}

	return errors.Wrapf(cli.ContainerKill(ctx, id, KILL_SIGNAL), "kill container %s", id)
}

func (docker *Docker) RemoveContainer(ctx context.Context, id string) error {
	cli, err := docker.Pool.Obtain(ctx)

	if err != nil {
		return err
	}

	return errors.Wrapf(cli.ContainerRemove(ctx, id, TDContainer.RemoveOptions{Force: true, RemoveVolumes: true}), "remove container %s", id)
}

func (docker *Docker) InspectContainer(ctx context.Context, id string) (*engine.Inspection, error) {
	cli, err := docker.Pool.Obtain(ctx)

	if err != nil {
		return nil, err
	}

	inspected, err := cli.ContainerInspect(ctx, id)

	if err != nil {
		return nil, errors.Wrapf(err, "inspect container %s", id)
	}

	return toInspection(inspected), nil
}

func (docker *Docker) Close() error {
	return docker.Pool.Close()
}
