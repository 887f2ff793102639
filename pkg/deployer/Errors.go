package deployer

import (
	"errors"
	"fmt"
)

const (
	STEP_FINALIZE = "finalize"
	STEP_PRESENCE = "presence"
	STEP_PULL     = "pull"
	STEP_CREATE   = "create"
	STEP_START    = "start"
	STEP_INSPECT  = "inspect"
	STEP_PORTS    = "ports"
	STEP_KILL     = "kill"
	STEP_STOP     = "stop"
	STEP_REMOVE   = "remove"
)

var (
	ERROR_EMPTY_IMAGE          = errors.New("image reference is empty")
	ERROR_NOT_REGISTERED       = errors.New("container is not registered with this deployer")
	ERROR_NO_PORT_MAPPING      = errors.New("expected port mapping, engine returned none")
	ERROR_MISSING_PORT_BINDING = errors.New("missing port binding")
	ERROR_STILL_RUNNING        = errors.New("container is still running")
	ERROR_DEPLOYER_CLOSED      = errors.New("deployer is closed")
)

// StepError is a failure of the remote call made by Step.
type StepError struct {
	Step        string
	ContainerID string
	Err         error
}

func (e *StepError) Error() string {
	if e.ContainerID == "" {
		return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
	}

	return fmt.Sprintf("%s failed for container %s: %v", e.Step, e.ContainerID, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// StateError reports a container that is not running right after start.
type StateError struct {
	State       string
	ContainerID string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("container %s is %q, expected running", e.ContainerID, e.State)
}

type PortError struct {
	Port        string
	ContainerID string
	Reason      error
}

func (e *PortError) Error() string {
	if e.Port == "" {
		return fmt.Sprintf("container %s: %v", e.ContainerID, e.Reason)
	}

	return fmt.Sprintf("container %s: %v for %s", e.ContainerID, e.Reason, e.Port)
}

func (e *PortError) Unwrap() error {
	return e.Reason
}
