package deployer

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/simplecontainer/deployer/pkg/configuration"
	"github.com/simplecontainer/deployer/pkg/deployment"
	"github.com/simplecontainer/deployer/pkg/engine"
	"github.com/simplecontainer/deployer/pkg/image"
	"github.com/simplecontainer/deployer/pkg/logger"
	"github.com/simplecontainer/deployer/pkg/metrics"
	"github.com/simplecontainer/deployer/pkg/static"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func New(endpoint configuration.Endpoint, eng engine.Engine, log *zap.Logger) *Deployer {
	return &Deployer{
		Endpoint:     endpoint,
		Engine:       eng,
		PollInterval: static.DEFAULT_POLL_INTERVAL,
		registry:     NewRegistry(),
		logger:       logger.OrNop(log).With(zap.String("endpoint", endpoint.Identifier())),
	}
}

// Deploy runs img with the options of spec and registers the resulting
// container. On failure after the container was created it is killed and
// removed before the error is returned.
func (deployer *Deployer) Deploy(ctx context.Context, img image.Image, spec *deployment.Deployment) (*Container, error) {
	trace := uuid.NewString()
	reference := img.String()
	log := deployer.logger.With(zap.String("trace", trace), zap.String("image", reference))

	started := time.Now()

	container, err := deployer.deploy(ctx, log, trace, img, spec)

	outcome := metrics.OUTCOME_SUCCESS
	if err != nil {
		outcome = metrics.OUTCOME_FAILURE
		log.Error("deploy failed", zap.Error(err))
	} else {
		log.Info("deployed", zap.String("container", container.ID), zap.Any("ports", container.Ports))
	}

	metrics.Deployments.Increment(outcome)
	metrics.DeployDuration.Observe(time.Since(started).Seconds(), outcome)

	return container, err
}

func (deployer *Deployer) deploy(ctx context.Context, log *zap.Logger, trace string, img image.Image, spec *deployment.Deployment) (*Container, error) {
	if img.Name == "" {
		return nil, ERROR_EMPTY_IMAGE
	}

	if deployer.registry.Closed() {
		return nil, ERROR_DEPLOYER_CLOSED
	}

	reference := img.String()

	log.Debug("step started", zap.String("step", STEP_FINALIZE))
	payload, err := spec.Finalize(img, deployer.Endpoint.DefaultVolumes(), deployer.Endpoint.Hostname())

	if err != nil {
		return nil, deployer.failed(&StepError{Step: STEP_FINALIZE, Err: err})
	}

	payload.Config.Labels[static.LABEL_TRACE] = trace

	err = deployer.ensureImage(ctx, log, reference)

	if err != nil {
		return nil, err
	}

	log.Debug("step started", zap.String("step", STEP_CREATE))
	id, err := deployer.Engine.CreateContainer(ctx, payload)

	if err != nil {
		if id != "" {
			deployer.rollback(ctx, log, id)
		}

		return nil, deployer.failed(&StepError{Step: STEP_CREATE, ContainerID: id, Err: err})
	}

	log = log.With(zap.String("container", id))
	log.Debug("step finished", zap.String("step", STEP_CREATE))

	container, err := deployer.startAndVerify(ctx, log, id, payload)

	if err != nil {
		deployer.rollback(ctx, log, id)
		return nil, deployer.failed(err)
	}

	container.Image = img
	container.Trace = trace

	err = deployer.registry.Add(container)

	if err != nil {
		log.Warn("deployer closed while deploying, rolling back")
		deployer.rollback(ctx, log, id)

		return nil, err
	}

	return container, nil
}

func (deployer *Deployer) ensureImage(ctx context.Context, log *zap.Logger, reference string) error {
	log.Debug("step started", zap.String("step", STEP_PRESENCE))
	present, err := deployer.Engine.IsImagePresent(ctx, reference)

	if err != nil {
		return deployer.failed(&StepError{Step: STEP_PRESENCE, Err: err})
	}

	if present {
		log.Debug("image present", zap.String("step", STEP_PRESENCE))
		return nil
	}

	log.Info("pulling image", zap.String("step", STEP_PULL))
	progress, err := deployer.Engine.Pull(ctx, reference)

	if err != nil {
		return deployer.failed(&StepError{Step: STEP_PULL, Err: err})
	}

	var pullErr error

	for event := range progress {
		if event.Err != nil {
			if pullErr == nil {
				pullErr = event.Err
			}

			continue
		}

		if strings.EqualFold(event.Status, static.PULL_STATUS_DOWNLOADING) {
			continue
		}

		if ce := log.Check(zap.DebugLevel, "pull progress"); ce != nil {
			ce.Write(zap.String("step", STEP_PULL), zap.String("layer", event.ID), zap.String("status", event.Status), zap.String("progress", event.Progress))
		}
	}

	if pullErr == nil {
		pullErr = ctx.Err()
	}

	if pullErr != nil {
		return deployer.failed(&StepError{Step: STEP_PULL, Err: pullErr})
	}

	log.Debug("step finished", zap.String("step", STEP_PULL))

	return nil
}

func (deployer *Deployer) startAndVerify(ctx context.Context, log *zap.Logger, id string, payload *deployment.Payload) (*Container, error) {
	log.Debug("step started", zap.String("step", STEP_START))
	err := deployer.Engine.StartContainer(ctx, id)

	if err != nil {
		return nil, &StepError{Step: STEP_START, ContainerID: id, Err: err}
	}

	log.Debug("step started", zap.String("step", STEP_INSPECT))
	inspection, err := deployer.Engine.InspectContainer(ctx, id)

	if err != nil {
		return nil, &StepError{Step: STEP_INSPECT, ContainerID: id, Err: err}
	}

	if !inspection.State.Running {
		return nil, &StateError{State: inspection.State.Status, ContainerID: id}
	}

	log.Debug("step started", zap.String("step", STEP_PORTS))
	ports, err := Remap(id, inspection.Ports, payload.Ports)

	if err != nil {
		return nil, err
	}

	name := inspection.Name
	if name == "" {
		name = payload.Name
	}

	return &Container{
		ID:    id,
		Name:  name,
		Host:  deployer.Endpoint.Hostname(),
		Ports: ports,
	}, nil
}

// rollback kills and removes a partially deployed container. It runs on a
// context detached from the caller so an expired deadline still cleans up.
func (deployer *Deployer) rollback(ctx context.Context, log *zap.Logger, id string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), static.ROLLBACK_TIMEOUT)
	defer cancel()

	outcome := metrics.OUTCOME_SUCCESS

	if err := deployer.Engine.KillContainer(ctx, id); err != nil {
		outcome = metrics.OUTCOME_FAILURE
		log.Error("rollback kill failed", zap.String("step", STEP_KILL), zap.Error(err))
	}

	if err := deployer.Engine.RemoveContainer(ctx, id); err != nil {
		outcome = metrics.OUTCOME_FAILURE
		log.Error("rollback remove failed", zap.String("step", STEP_REMOVE), zap.Error(err))
	}

	metrics.Rollbacks.Increment(outcome)
}

func (deployer *Deployer) failed(err error) error {
	switch e := err.(type) {
	case *StepError:
		metrics.StepFailures.Increment(e.Step)
	case *StateError:
		metrics.StepFailures.Increment(STEP_INSPECT)
	case *PortError:
		metrics.StepFailures.Increment(STEP_PORTS)
	}

	return err
}

// Kill kills and removes the container, it is unregistered only when both
// calls succeed.
func (deployer *Deployer) Kill(ctx context.Context, container *Container) (*Container, error) {
	return deployer.teardown(ctx, container, STEP_KILL, func(ctx context.Context) error {
		return deployer.Engine.KillContainer(ctx, container.ID)
	})
}

// Stop stops the container, giving it graceSeconds before the engine kills
// it, then removes it.
func (deployer *Deployer) Stop(ctx context.Context, container *Container, graceSeconds int) (*Container, error) {
	return deployer.teardown(ctx, container, STEP_STOP, func(ctx context.Context) error {
		return deployer.Engine.StopContainer(ctx, container.ID, graceSeconds)
	})
}

func (deployer *Deployer) teardown(ctx context.Context, container *Container, step string, halt func(ctx context.Context) error) (*Container, error) {
	if !deployer.registry.Contains(container.ID) {
		return container, ERROR_NOT_REGISTERED
	}

	log := deployer.logger.With(zap.String("container", container.ID), zap.String("trace", container.Trace))

	err := halt(ctx)

	if err != nil {
		metrics.Teardowns.Increment(step, metrics.OUTCOME_FAILURE)
		return container, &StepError{Step: step, ContainerID: container.ID, Err: err}
	}

	err = deployer.Engine.RemoveContainer(ctx, container.ID)

	if err != nil {
		metrics.Teardowns.Increment(step, metrics.OUTCOME_FAILURE)
		return container, &StepError{Step: STEP_REMOVE, ContainerID: container.ID, Err: err}
	}

	deployer.registry.Remove(container.ID)
	metrics.Teardowns.Increment(step, metrics.OUTCOME_SUCCESS)

	log.Info("container removed", zap.String("step", step))

	return container, nil
}

// Watch polls the container every interval until it is no longer running and
// returns the state it ended in. Cancelling ctx stops the polling.
func (deployer *Deployer) Watch(ctx context.Context, container *Container, interval time.Duration) (engine.State, error) {
	if interval <= 0 {
		interval = deployer.PollInterval
	}

	if err := ctx.Err(); err != nil {
		return engine.State{}, err
	}

	var terminal engine.State

	operation := func() error {
		inspection, err := deployer.Engine.InspectContainer(ctx, container.ID)

		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}

			return backoff.Permanent(&StepError{Step: STEP_INSPECT, ContainerID: container.ID, Err: err})
		}

		if inspection.State.Running {
			return ERROR_STILL_RUNNING
		}

		terminal = inspection.State

		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.NewConstantBackOff(interval), ctx))

	if err != nil {
		return engine.State{}, err
	}

	deployer.logger.Info("container stopped running",
		zap.String("container", container.ID),
		zap.String("state", terminal.Status),
		zap.Int("exitCode", terminal.ExitCode),
	)

	return terminal, nil
}

func (deployer *Deployer) Inspect(ctx context.Context, container *Container) (*engine.Inspection, error) {
	inspection, err := deployer.Engine.InspectContainer(ctx, container.ID)

	if err != nil {
		return nil, &StepError{Step: STEP_INSPECT, ContainerID: container.ID, Err: err}
	}

	return inspection, nil
}

// Containers returns the live containers at the time of the call.
func (deployer *Deployer) Containers() []*Container {
	return deployer.registry.Snapshot()
}

func (deployer *Deployer) Find(id string) *Container {
	return deployer.registry.Find(id)
}

// Close kills every registered container concurrently, empties the registry
// and closes the engine. Individual kill failures are logged only. Deploys
// still in flight roll back instead of registering.
func (deployer *Deployer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), static.ROLLBACK_TIMEOUT)
	defer cancel()

	group := errgroup.Group{}

	for _, container := range deployer.registry.Seal() {
		group.Go(func() error {
			_, err := deployer.Kill(ctx, container)

			if err != nil {
				deployer.logger.Error("kill on close failed", zap.String("container", container.ID), zap.Error(err))
			}

			return err
		})
	}

	if err := group.Wait(); err != nil {
		deployer.logger.Warn("some containers were not removed on close", zap.Error(err))
	}

	if dropped := deployer.registry.Clear(); dropped > 0 {
		deployer.logger.Warn("dropped containers from registry", zap.Int("count", dropped))
	}

	return deployer.Engine.Close()
}
