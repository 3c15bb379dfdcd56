package domain

import (
	"context"
	"log/slog"
)

type loggingRegistryService struct {
	logger *slog.Logger
	next   RegistryService
}

func NewLoggingRegistryService(logger *slog.Logger, next RegistryService) RegistryService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingRegistryService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingRegistryService) ListNetworks(ctx context.Context) ([]NetworkEntry, error) {
	entries, err := s.next.ListNetworks(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list networks failed", "err", err.Error())
	}
	return entries, err
}

func (s *loggingRegistryService) CreateNetwork(ctx context.Context, input CreateNetworkInput) (NetworkEntry, error) {
	entry, err := s.next.CreateNetwork(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create network failed", "name", input.Name, "family", input.Family, "err", err.Error())
		return NetworkEntry{}, err
	}

	s.logger.InfoContext(ctx, "network created", "id", string(entry.ID), "name", entry.Name, "family", entry.Family().String())
	return entry, nil
}

func (s *loggingRegistryService) GetNetwork(ctx context.Context, id NetworkID) (NetworkEntry, error) {
	entry, err := s.next.GetNetwork(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get network failed", "id", string(id), "err", err.Error())
	}
	return entry, err
}

func (s *loggingRegistryService) GetNetworkByName(ctx context.Context, name string) (NetworkEntry, error) {
	entry, err := s.next.GetNetworkByName(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "get network by name failed", "name", name, "err", err.Error())
	}
	return entry, err
}

func (s *loggingRegistryService) DeleteNetwork(ctx context.Context, id NetworkID) error {
	err := s.next.DeleteNetwork(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete network failed", "id", string(id), "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "network deleted", "id", string(id))
	return nil
}

func (s *loggingRegistryService) ListHosts(ctx context.Context, id NetworkID) ([]Host, error) {
	hosts, err := s.next.ListHosts(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "list hosts failed", "network_id", string(id), "err", err.Error())
	}
	return hosts, err
}

func (s *loggingRegistryService) AddHost(ctx context.Context, id NetworkID, input AddHostInput) (Host, error) {
	host, err := s.next.AddHost(ctx, id, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "add host failed", "network_id", string(id), "ip", input.IP, "hostname", input.Hostname, "err", err.Error())
		return Host{}, err
	}

	s.logger.DebugContext(ctx, "host added", "network_id", string(id), "ip", host.Address().String(), "hostname", host.HostName())
	return host, nil
}

// Lookups that miss are expected, so they are not logged as errors.
func (s *loggingRegistryService) GetHostByIP(ctx context.Context, id NetworkID, ip string) (Host, error) {
	host, err := s.next.GetHostByIP(ctx, id, ip)
	if err != nil {
		s.logger.DebugContext(ctx, "get host by ip failed", "network_id", string(id), "ip", ip, "err", err.Error())
	}
	return host, err
}

func (s *loggingRegistryService) GetHostByName(ctx context.Context, id NetworkID, hostname string) (Host, error) {
	host, err := s.next.GetHostByName(ctx, id, hostname)
	if err != nil {
		s.logger.DebugContext(ctx, "get host by name failed", "network_id", string(id), "hostname", hostname, "err", err.Error())
	}
	return host, err
}

func (s *loggingRegistryService) UpdateHostName(ctx context.Context, id NetworkID, ip string, input UpdateHostInput) (Host, error) {
	host, err := s.next.UpdateHostName(ctx, id, ip, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "update hostname failed", "network_id", string(id), "ip", ip, "err", err.Error())
		return Host{}, err
	}

	s.logger.DebugContext(ctx, "hostname updated", "network_id", string(id), "ip", ip, "hostname", host.HostName())
	return host, nil
}

func (s *loggingRegistryService) RemoveHostByIP(ctx context.Context, id NetworkID, ip string) error {
	err := s.next.RemoveHostByIP(ctx, id, ip)
	if err != nil {
		s.logger.ErrorContext(ctx, "remove host by ip failed", "network_id", string(id), "ip", ip, "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "host removed", "network_id", string(id), "ip", ip)
	return nil
}

func (s *loggingRegistryService) RemoveHostByName(ctx context.Context, id NetworkID, hostname string) error {
	err := s.next.RemoveHostByName(ctx, id, hostname)
	if err != nil {
		s.logger.ErrorContext(ctx, "remove host by name failed", "network_id", string(id), "hostname", hostname, "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "host removed", "network_id", string(id), "hostname", hostname)
	return nil
}
