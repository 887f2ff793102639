package static

import "time"

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// Configuration lookup
const (
	ENV_CONFIG_FILE        = "DEPLOYER_CONFIG_FILE"
	ENV_LOG_LEVEL          = "LOG_LEVEL"
	DEFAULT_CONFIG_YAML    = "deployer.yaml"
	DEFAULT_CONFIG_PROPS   = "deployer.properties"
	DEFAULT_DOTENV         = ".env"
	CONFIG_TYPE_YAML       = "yaml"
	CONFIG_TYPE_PROPERTIES = "properties"
)

// Endpoint kinds
const (
	ENDPOINT_HTTP  = "http"
	ENDPOINT_HTTPS = "https"
	ENDPOINT_UNIX  = "unix"
)

// Well-known image tags
const (
	TAG_MASTER = "master"
	TAG_LATEST = "latest"
)

// Container labels and environment
const (
	LABEL_MANAGED       = "managed"
	LABEL_MANAGED_VALUE = "deployer"
	LABEL_TRACE         = "trace"
	ENV_DOCKER_HOST_IP  = "DOCKER_HOST_IP"
)

// Engine states
const (
	STATE_RUNNING = "running"
	STATE_EXITED  = "exited"
)

// Pull progress status the deployer does not trace
const PULL_STATUS_DOWNLOADING = "downloading"

// Pool token used when the caller does not provide one
const DEFAULT_POOL_TOKEN = "default"

// Timeouts
const (
	DEFAULT_POLL_INTERVAL = 1 * time.Second
	DEFAULT_STOP_GRACE    = 10
	ROLLBACK_TIMEOUT      = 30 * time.Second
)
