package domain

import "context"

type NetworkRepository interface {
	List(ctx context.Context) ([]NetworkEntry, error)
	FindByID(ctx context.Context, id NetworkID) (NetworkEntry, error)
	FindByName(ctx context.Context, name string) (NetworkEntry, error)
	Create(ctx context.Context, input CreateNetworkRecord) (NetworkEntry, error)
	Delete(ctx context.Context, id NetworkID) (bool, error)
}
