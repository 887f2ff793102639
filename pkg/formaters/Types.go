package formaters

type ContainerInformation struct {
	ID    string
	Name  string
	Image string
	Host  string
	Ports string
	Trace string
}

type EndpointInformation struct {
	ID      string
	Kind    string
	URI     string
	Host    string
	Volumes string
}
