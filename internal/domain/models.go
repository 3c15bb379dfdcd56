package domain

import "time"

type NetworkID string

// NetworkEntry is a named network held by the registry.
type NetworkEntry struct {
	ID        NetworkID
	Name      string
	CreatedAt time.Time
	Network   *Network
}

func (e NetworkEntry) Family() Family {
	if e.Network == nil {
		return FamilyAny
	}
	return e.Network.Family()
}

func (e NetworkEntry) HostCount() int {
	if e.Network == nil {
		return 0
	}
	return e.Network.HostCount()
}
