package domain

import "context"

type RegistryService interface {
	ListNetworks(ctx context.Context) ([]NetworkEntry, error)
	CreateNetwork(ctx context.Context, input CreateNetworkInput) (NetworkEntry, error)
	GetNetwork(ctx context.Context, id NetworkID) (NetworkEntry, error)
	GetNetworkByName(ctx context.Context, name string) (NetworkEntry, error)
	DeleteNetwork(ctx context.Context, id NetworkID) error
	ListHosts(ctx context.Context, id NetworkID) ([]Host, error)
	AddHost(ctx context.Context, id NetworkID, input AddHostInput) (Host, error)
	GetHostByIP(ctx context.Context, id NetworkID, ip string) (Host, error)
	GetHostByName(ctx context.Context, id NetworkID, hostname string) (Host, error)
	UpdateHostName(ctx context.Context, id NetworkID, ip string, input UpdateHostInput) (Host, error)
	RemoveHostByIP(ctx context.Context, id NetworkID, ip string) error
	RemoveHostByName(ctx context.Context, id NetworkID, hostname string) error
}
