package configuration

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/simplecontainer/deployer/pkg/static"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func (e HttpEndpoint) Kind() string { return static.ENDPOINT_HTTP }
func (e HttpEndpoint) Identifier() string { return e.ID }
func (e HttpEndpoint) Hostname() string { return e.Host }
func (e HttpEndpoint) DefaultVolumes() []string { return e.Volumes }
func (e HttpEndpoint) URI() string { return fmt.Sprintf("tcp://%s:%d", e.Host, e.Port) }
func (e HttpEndpoint) endpoint() {}

func (e HttpsEndpoint) Kind() string { return static.ENDPOINT_HTTPS }
func (e HttpsEndpoint) Identifier() string { return e.ID }
func (e HttpsEndpoint) Hostname() string { return e.Host }
func (e HttpsEndpoint) DefaultVolumes() []string { return e.Volumes }
func (e HttpsEndpoint) URI() string { return fmt.Sprintf("tcp://%s:%d", e.Host, e.Port) }
func (e HttpsEndpoint) endpoint() {}

func (e UnixEndpoint) Kind() string { return static.ENDPOINT_UNIX }
func (e UnixEndpoint) Identifier() string { return e.ID }
func (e UnixEndpoint) DefaultVolumes() []string { return e.Volumes }
func (e UnixEndpoint) URI() string { return fmt.Sprintf("unix://%s", e.Path) }
func (e UnixEndpoint) endpoint() {}

// Hostname of a socket endpoint defaults to localhost, the socket is local to
// the engine host.
func (e UnixEndpoint) Hostname() string {
	if e.Host == "" {
		return "localhost"
	}

	return e.Host
}

// NewEndpoint builds and validates the endpoint of the given kind. Fields
// that do not belong to the kind are ignored.
func NewEndpoint(kind string, id string, host string, port int, cert string, path string, volumes []string) (Endpoint, error) {
	var endpoint Endpoint

	switch kind {
	case static.ENDPOINT_HTTP:
		endpoint = HttpEndpoint{ID: id, Host: host, Port: port, Volumes: volumes}
	case static.ENDPOINT_HTTPS:
		endpoint = HttpsEndpoint{ID: id, Host: host, Port: port, CertPath: cert, Volumes: volumes}
	case static.ENDPOINT_UNIX:
		endpoint = UnixEndpoint{ID: id, Path: path, Host: host, Volumes: volumes}
	case "":
		return nil, fmt.Errorf("%w: api %q", ERROR_MISSING_KIND, id)
	default:
		return nil, fmt.Errorf("%w: %q for api %q", ERROR_UNKNOWN_KIND, kind, id)
	}

	if err := Validate(endpoint); err != nil {
		return nil, err
	}

	return endpoint, nil
}

func Validate(endpoint Endpoint) error {
	err := validate.Struct(endpoint)

	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return fmt.Errorf("invalid %s api %q: %w", endpoint.Kind(), endpoint.Identifier(), validationErrors)
		}

		return err
	}

	return nil
}
