package configuration

import "github.com/simplecontainer/deployer/pkg/image"

type Configuration struct {
	Endpoints []Endpoint
	Registry  image.Registry
	Overrides []image.TagOverride
}

// Endpoint is one of HttpEndpoint, HttpsEndpoint or UnixEndpoint.
type Endpoint interface {
	Kind() string
	Identifier() string
	// Hostname is the host published container ports are reachable on.
	Hostname() string
	URI() string
	DefaultVolumes() []string
	endpoint()
}

type HttpEndpoint struct {
	ID      string   `yaml:"id,omitempty"`
	Host    string   `validate:"required" yaml:"host"`
	Port    int      `validate:"required,min=1,max=65535" yaml:"port"`
	Volumes []string `yaml:"volumes,omitempty"`
}

type HttpsEndpoint struct {
	ID       string   `yaml:"id,omitempty"`
	Host     string   `validate:"required" yaml:"host"`
	Port     int      `validate:"required,min=1,max=65535" yaml:"port"`
	CertPath string   `validate:"required" yaml:"cert"`
	Volumes  []string `yaml:"volumes,omitempty"`
}

type UnixEndpoint struct {
	ID      string   `yaml:"id,omitempty"`
	Path    string   `validate:"required" yaml:"path"`
	Host    string   `yaml:"host,omitempty"`
	Volumes []string `yaml:"volumes,omitempty"`
}

type rawDocument struct {
	Api      []rawEndpoint       `yaml:"api"`
	Registry *rawRegistry        `yaml:"registry"`
	Override []map[string]string `yaml:"override"`
}

type rawEndpoint struct {
	Type    string   `yaml:"type"`
	Id      string   `yaml:"id"`
	Host    string   `yaml:"host"`
	Port    int      `yaml:"port"`
	Cert    string   `yaml:"cert"`
	Path    string   `yaml:"path"`
	Volumes []string `yaml:"volumes"`
}

type rawRegistry struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// document is the yaml shape written by Marshal, it mirrors what ParseYAML reads.
type document struct {
	Api      []documentEndpoint    `yaml:"api"`
	Registry *image.RemoteRegistry `yaml:"registry,omitempty"`
	Override []map[string]string   `yaml:"override,omitempty"`
}

type documentEndpoint struct {
	Type    string   `yaml:"type"`
	Id      string   `yaml:"id,omitempty"`
	Host    string   `yaml:"host,omitempty"`
	Port    int      `yaml:"port,omitempty"`
	Cert    string   `yaml:"cert,omitempty"`
	Path    string   `yaml:"path,omitempty"`
	Volumes []string `yaml:"volumes,omitempty"`
}
