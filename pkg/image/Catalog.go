package image

const (
	CASSANDRA_CLUSTER_COMM_PORT     = "7000/tcp"
	CASSANDRA_SSL_CLUSTER_COMM_PORT = "7001/tcp"
	CASSANDRA_JMX_PORT              = "7199/tcp"
	CASSANDRA_NATIVE_COMM_PORT      = "9042/tcp"
	CASSANDRA_THRIFT_PORT           = "9160/tcp"
)

var cassandraPorts = []string{
	CASSANDRA_CLUSTER_COMM_PORT,
	CASSANDRA_SSL_CLUSTER_COMM_PORT,
	CASSANDRA_JMX_PORT,
	CASSANDRA_NATIVE_COMM_PORT,
	CASSANDRA_THRIFT_PORT,
}

func NewImages(registry Registry, overrides []TagOverride) *Images {
	return &Images{
		Registry:  registry,
		Overrides: overrides,
	}
}

func (images *Images) Builder(repository string, name string, exposedPorts ...string) *Builder {
	return NewBuilder(images.Registry, repository, name, exposedPorts, images.Overrides)
}

func (images *Images) Cassandra() *Builder {
	return images.Builder("", "cassandra", cassandraPorts...)
}
