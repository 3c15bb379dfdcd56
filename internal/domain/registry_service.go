package domain

import (
	"context"
	"fmt"
	"net/netip"
	"slices"
	"strings"
)

type registryService struct {
	networks NetworkRepository
}

func NewRegistryService(networks NetworkRepository) RegistryService {
	return &registryService{networks: networks}
}

func (s *registryService) ListNetworks(ctx context.Context) ([]NetworkEntry, error) {
	entries, err := s.networks.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(entries, func(a, b NetworkEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}

func (s *registryService) CreateNetwork(ctx context.Context, input CreateNetworkInput) (NetworkEntry, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return NetworkEntry{}, fmt.Errorf("%w: network name is required", ErrInvalidInput)
	}
	family, err := ParseFamily(input.Family)
	if err != nil {
		return NetworkEntry{}, err
	}
	return s.networks.Create(ctx, CreateNetworkRecord{Name: name, Family: family})
}

func (s *registryService) GetNetwork(ctx context.Context, id NetworkID) (NetworkEntry, error) {
	return s.networks.FindByID(ctx, id)
}

func (s *registryService) GetNetworkByName(ctx context.Context, name string) (NetworkEntry, error) {
	return s.networks.FindByName(ctx, strings.TrimSpace(name))
}

func (s *registryService) DeleteNetwork(ctx context.Context, id NetworkID) error {
	deleted, err := s.networks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNetworkNotFound
	}
	return nil
}

func (s *registryService) ListHosts(ctx context.Context, id NetworkID) ([]Host, error) {
	network, err := s.network(ctx, id)
	if err != nil {
		return nil, err
	}
	return network.Hosts(), nil
}

func (s *registryService) AddHost(ctx context.Context, id NetworkID, input AddHostInput) (Host, error) {
	network, err := s.network(ctx, id)
	if err != nil {
		return Host{}, err
	}

	host, err := ParseHost(input.IP, input.Hostname)
	if err != nil {
		return Host{}, err
	}

	if err = network.AddHost(host); err != nil {
		return Host{}, err
	}
	return host, nil
}

func (s *registryService) GetHostByIP(ctx context.Context, id NetworkID, ip string) (Host, error) {
	network, err := s.network(ctx, id)
	if err != nil {
		return Host{}, err
	}

	addr, err := parseAddr(ip)
	if err != nil {
		return Host{}, err
	}

	host, ok := network.GetHostByIP(addr)
	if !ok {
		return Host{}, ErrHostNotFound
	}
	return host, nil
}

func (s *registryService) GetHostByName(ctx context.Context, id NetworkID, hostname string) (Host, error) {
	network, err := s.network(ctx, id)
	if err != nil {
		return Host{}, err
	}

	host, ok := network.GetHostByName(hostname)
	if !ok {
		return Host{}, ErrHostNotFound
	}
	return host, nil
}

func (s *registryService) UpdateHostName(ctx context.Context, id NetworkID, ip string, input UpdateHostInput) (Host, error) {
	network, err := s.network(ctx, id)
	if err != nil {
		return Host{}, err
	}

	addr, err := parseAddr(ip)
	if err != nil {
		return Host{}, err
	}
	return network.RenameHost(addr, input.Hostname)
}

func (s *registryService) RemoveHostByIP(ctx context.Context, id NetworkID, ip string) error {
	network, err := s.network(ctx, id)
	if err != nil {
		return err
	}

	addr, err := parseAddr(ip)
	if err != nil {
		return err
	}

	if !network.RemoveHostByIP(addr) {
		return ErrHostNotFound
	}
	return nil
}

func (s *registryService) RemoveHostByName(ctx context.Context, id NetworkID, hostname string) error {
	network, err := s.network(ctx, id)
	if err != nil {
		return err
	}

	if !network.RemoveHostByName(hostname) {
		return ErrHostNotFound
	}
	return nil
}

// network resolves id to its host table. An entry without a Network counts as
// not found.
func (s *registryService) network(ctx context.Context, id NetworkID) (*Network, error) {
	entry, err := s.networks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Network == nil {
		return nil, fmt.Errorf("%w: %s has no hosts table", ErrNetworkNotFound, id)
	}
	return entry.Network, nil
}

func parseAddr(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: invalid ip", ErrInvalidInput)
	}
	return addr, nil
}
