package domain

type CreateNetworkInput struct {
	Name   string
	Family string
}

type CreateNetworkRecord struct {
	Name   string
	Family Family
}

type AddHostInput struct {
	IP       string
	Hostname string
}

type UpdateHostInput struct {
	Hostname string
}
