package docker

import (
	"fmt"
	"path/filepath"

	IDClient "github.com/docker/docker/client"
	"github.com/simplecontainer/deployer/pkg/configuration"
)

// Connect builds a client for the endpoint. No request is made until the
// client is used.
func Connect(endpoint configuration.Endpoint) (*IDClient.Client, error) {
	opts := []IDClient.Opt{
		IDClient.WithHost(endpoint.URI()),
		IDClient.WithAPIVersionNegotiation(),
	}

	switch e := endpoint.(type) {
	case configuration.HttpEndpoint, configuration.UnixEndpoint:
	case configuration.HttpsEndpoint:
		opts = append(opts, IDClient.WithTLSClientConfig(
			filepath.Join(e.CertPath, CA_FILE),
			filepath.Join(e.CertPath, CERT_FILE),
			filepath.Join(e.CertPath, KEY_FILE),
		))
	default:
		return nil, fmt.Errorf("unsupported endpoint %T", endpoint)
	}

	return IDClient.NewClientWithOpts(opts...)
}
