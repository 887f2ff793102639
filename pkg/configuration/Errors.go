package configuration

import "errors"

var (
	ERROR_NO_ENDPOINTS        = errors.New("expecting at least one api endpoint")
	ERROR_MISSING_KIND        = errors.New("type of api endpoint is not specified")
	ERROR_UNKNOWN_KIND        = errors.New("unknown type of api endpoint")
	ERROR_INCOMPLETE_REGISTRY = errors.New("registry requires both host and port")
	ERROR_INVALID_OVERRIDE    = errors.New("tag override must be [repository.]name.tag")
	ERROR_UNKNOWN_FORMAT      = errors.New("unknown configuration format")
	ERROR_CONFIG_NOT_FOUND    = errors.New("configuration file not found")
)
