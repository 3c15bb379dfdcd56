package domain

import (
	"fmt"
	"net/netip"
	"slices"
	"strings"
	"sync"

	"go4.org/netipx"
)

// Network is a set of hosts with unique addresses and unique
// (case-insensitive) hostnames. A Network may restrict the address family of
// the hosts it accepts. The zero value is an empty network that accepts both
// families. It is safe for concurrent use.
type Network struct {
	mu     sync.RWMutex
	family Family
	byAddr map[netip.Addr]Host
	byName map[string]netip.Addr
}

type NetworkOption func(*Network)

// WithFamily makes AddHost reject hosts whose family differs from f.
// FamilyAny lifts the restriction.
func WithFamily(f Family) NetworkOption {
	return func(n *Network) {
		n.family = f
	}
}

func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		byAddr: make(map[netip.Addr]Host),
		byName: make(map[string]netip.Addr),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func NewIPv4Network() *Network {
	return NewNetwork(WithFamily(FamilyIPv4))
}

func NewIPv6Network() *Network {
	return NewNetwork(WithFamily(FamilyIPv6))
}

func (n *Network) Family() Family {
	return n.family
}

func (n *Network) GetHostByIP(addr netip.Addr) (Host, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.hostByIP(addr)
}

func (n *Network) GetHostByName(hostName string) (Host, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.hostByName(hostName)
}

// AddHost stores host. It fails with ErrMissingArgument for the zero Host,
// ErrWrongAddressFamily when the network's family guard rejects it, then
// ErrDuplicateAddress or ErrDuplicateName, checked in that order. The network
// is left untouched on failure.
func (n *Network) AddHost(host Host) error {
	if host.IsZero() {
		return fmt.Errorf("%w: host", ErrMissingArgument)
	}
	if !n.family.Allows(host.Family()) {
		return fmt.Errorf("%w: only %s hosts are allowed in this network", ErrWrongAddressFamily, n.family.label())
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if existing, ok := n.hostByIP(host.address); ok {
		return fmt.Errorf("%w: %s is taken by %q", ErrDuplicateAddress, host.address, existing.hostName)
	}
	if existing, ok := n.nameTaken(host.hostName, netip.Addr{}); ok {
		return fmt.Errorf("%w: %q is taken by %s", ErrDuplicateName, host.hostName, existing.address)
	}

	n.insert(host)
	return nil
}

// RemoveHost deletes host if the network holds a host equal to it.
func (n *Network) RemoveHost(host Host) (bool, error) {
	if host.IsZero() {
		return false, fmt.Errorf("%w: host", ErrMissingArgument)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	existing, ok := n.hostByIP(host.address)
	if !ok || !existing.Equal(host) {
		return false, nil
	}
	n.delete(existing)
	return true, nil
}

func (n *Network) RemoveHostByIP(addr netip.Addr) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	host, ok := n.hostByIP(addr)
	if !ok {
		return false
	}
	n.delete(host)
	return true
}

func (n *Network) RemoveHostByName(hostName string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	host, ok := n.hostByName(hostName)
	if !ok {
		return false
	}
	n.delete(host)
	return true
}

// RenameHost changes the hostname of the host stored at addr. Renaming to a
// case variant of the current name is allowed.
func (n *Network) RenameHost(addr netip.Addr, hostName string) (Host, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	current, ok := n.hostByIP(addr)
	if !ok {
		return Host{}, fmt.Errorf("%w: %s", ErrHostNotFound, addr)
	}
	if other, ok := n.nameTaken(hostName, current.address); ok {
		return Host{}, fmt.Errorf("%w: %q is taken by %s", ErrDuplicateName, hostName, other.address)
	}

	renamed := Host{address: current.address, hostName: hostName}
	n.delete(current)
	n.insert(renamed)
	return renamed, nil
}

func (n *Network) HostCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.byAddr)
}

// Hosts returns a snapshot of the network ordered by address.
func (n *Network) Hosts() []Host {
	n.mu.RLock()
	hosts := make([]Host, 0, len(n.byAddr))
	for _, h := range n.byAddr {
		hosts = append(hosts, h)
	}
	n.mu.RUnlock()

	slices.SortFunc(hosts, func(a, b Host) int {
		return a.address.Compare(b.address)
	})
	return hosts
}

// AddressSet returns the occupied addresses as an IPSet.
func (n *Network) AddressSet() (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	n.mu.RLock()
	for addr := range n.byAddr {
		b.Add(addr)
	}
	n.mu.RUnlock()
	return b.IPSet()
}

// hostByIP only matches a host of the same family as addr. Map key equality
// on netip.Addr already separates families, the explicit check keeps that a
// stated rule rather than a property of the key type.
func (n *Network) hostByIP(addr netip.Addr) (Host, bool) {
	if !addr.IsValid() {
		return Host{}, false
	}
	host, ok := n.byAddr[addr.WithZone("")]
	if !ok || !sameAddress(host.address, addr) {
		return Host{}, false
	}
	return host, true
}

// hostByName trims the query; stored names are compared as stored.
func (n *Network) hostByName(hostName string) (Host, bool) {
	addr, ok := n.byName[foldName(strings.TrimSpace(hostName))]
	if !ok {
		return Host{}, false
	}
	return n.byAddr[addr], true
}

// nameTaken reports a host other than the one at except that owns hostName,
// either in its trimmed form, as a lookup would see it, or as it would be
// stored.
func (n *Network) nameTaken(hostName string, except netip.Addr) (Host, bool) {
	for _, key := range []string{foldName(strings.TrimSpace(hostName)), foldName(hostName)} {
		addr, ok := n.byName[key]
		if ok && addr != except {
			return n.byAddr[addr], true
		}
	}
	return Host{}, false
}

func (n *Network) insert(host Host) {
	if n.byAddr == nil {
		n.byAddr = make(map[netip.Addr]Host)
		n.byName = make(map[string]netip.Addr)
	}
	n.byAddr[host.address] = host
	n.byName[foldName(host.hostName)] = host.address
}

func (n *Network) delete(host Host) {
	delete(n.byAddr, host.address)
	delete(n.byName, foldName(host.hostName))
}
