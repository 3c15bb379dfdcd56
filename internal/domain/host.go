package domain

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go4.org/netipx"
	"golang.org/x/text/cases"
)

// Host pairs an address with a display hostname. Hosts are values: two hosts
// are equal when their addresses match bit for bit within the same family
// and their hostnames match ignoring case.
type Host struct {
	address  netip.Addr
	hostName string
}

// HostKey is a comparable identity of a Host, consistent with Host.Equal.
type HostKey struct {
	Address netip.Addr
	Name    string
}

// NewHost builds a host. The zero netip.Addr counts as a missing address. Any
// zone on addr is dropped. The hostname is stored as given, empty included.
func NewHost(addr netip.Addr, hostName string) (Host, error) {
	if !addr.IsValid() {
		return Host{}, fmt.Errorf("%w: address", ErrMissingArgument)
	}
	return Host{
		address:  addr.WithZone(""),
		hostName: hostName,
	}, nil
}

func ParseHost(addr, hostName string) (Host, error) {
	if strings.TrimSpace(addr) == "" {
		return Host{}, fmt.Errorf("%w: address", ErrMissingArgument)
	}
	ip, err := netip.ParseAddr(strings.TrimSpace(addr))
	if err != nil {
		return Host{}, fmt.Errorf("%w: invalid ip %q", ErrInvalidInput, addr)
	}
	return NewHost(ip, hostName)
}

// HostFromStdIP converts a net.IP. 16-byte encodings of IPv4 addresses are
// treated as IPv4.
func HostFromStdIP(ip net.IP, hostName string) (Host, error) {
	addr, ok := netipx.FromStdIP(ip)
	if !ok {
		return Host{}, fmt.Errorf("%w: address", ErrMissingArgument)
	}
	return NewHost(addr, hostName)
}

func (h Host) Address() netip.Addr {
	return h.address
}

func (h Host) HostName() string {
	return h.hostName
}

func (h Host) Family() Family {
	return FamilyOf(h.address)
}

func (h Host) IsIPv4() bool {
	return h.Family() == FamilyIPv4
}

func (h Host) IsIPv6() bool {
	return h.Family() == FamilyIPv6
}

// IsZero reports whether h is the zero Host, which stands for "no host".
func (h Host) IsZero() bool {
	return !h.address.IsValid()
}

func (h Host) Equal(other Host) bool {
	return sameAddress(h.address, other.address) && foldName(h.hostName) == foldName(other.hostName)
}

func (h Host) Key() HostKey {
	return HostKey{Address: h.address, Name: foldName(h.hostName)}
}

func (h Host) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(h.Family())})
	_, _ = d.Write(h.address.AsSlice())
	_, _ = d.WriteString(foldName(h.hostName))
	return d.Sum64()
}

func (h Host) String() string {
	if h.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("%s (%s)", h.hostName, h.address)
}

// sameAddress compares families explicitly before comparing bytes, so an
// IPv4 address never matches an IPv6 one, IPv4-mapped forms included.
func sameAddress(a, b netip.Addr) bool {
	if FamilyOf(a) != FamilyOf(b) {
		return false
	}
	return a.WithZone("") == b.WithZone("")
}

// foldName applies full Unicode case folding, so "straße" and "STRASSE" fold
// alike. A Caser is stateful, so one is built per call.
func foldName(name string) string {
	return cases.Fold().String(name)
}
