package image

// Registry renders the prefix an image reference starts with.
type Registry interface {
	ConnectionString() string
}

// RemoteRegistry is a registry reachable at host:port.
type RemoteRegistry struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LocalRegistry resolves images against whatever the engine already knows,
// it adds no prefix.
type LocalRegistry struct{}

// Connection is a registry given directly by its connection string, for
// example "reg.example.com:5000/".
type Connection string

// Image is an immutable image reference.
type Image struct {
	Registry     Registry
	Repository   string
	Name         string
	Tag          string
	ExposedPorts []string
}

// TagOverride substitutes Override for Tag on images matching Repository and
// Name. An empty Repository matches images without a repository.
type TagOverride struct {
	Repository string `yaml:"repository,omitempty"`
	Name       string `yaml:"name"`
	Tag        string `yaml:"tag"`
	Override   string `yaml:"override"`
}

// Builder produces images of one repository/name for different tags, honoring
// the tag overrides that apply to it.
type Builder struct {
	registry     Registry
	repository   string
	name         string
	exposedPorts []string
	overrides    []TagOverride
}

// Images is a catalogue of builders sharing a registry and override table.
type Images struct {
	Registry  Registry
	Overrides []TagOverride
}
