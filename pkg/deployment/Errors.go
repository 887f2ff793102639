package deployment

import "errors"

var (
	ERROR_ALREADY_FINALIZED    = errors.New("deployment was already finalized")
	ERROR_PORT_POLICY_CONFLICT = errors.New("explicit port bindings and publish-all-ports are mutually exclusive")
	ERROR_INVALID_PORT         = errors.New("invalid port spec")
	ERROR_INVALID_VOLUME       = errors.New("volume binding must be hostPath:containerPath")
)
