package domain

import (
	"fmt"
	"net/netip"
	"strings"
)

// Family classifies an address as IPv4 or IPv6. The zero value, FamilyAny,
// means "unrestricted" when used as a network guard.
type Family uint8

const (
	FamilyAny Family = iota
	FamilyIPv4
	FamilyIPv6
)

// FamilyOf reports the concrete family of addr. IPv4-mapped IPv6 addresses
// are IPv6. The invalid zero address has no family and yields FamilyAny.
func FamilyOf(addr netip.Addr) Family {
	switch {
	case addr.Is4():
		return FamilyIPv4
	case addr.Is6():
		return FamilyIPv6
	default:
		return FamilyAny
	}
}

func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return FamilyAny, nil
	case "ipv4", "v4", "4":
		return FamilyIPv4, nil
	case "ipv6", "v6", "6":
		return FamilyIPv6, nil
	default:
		return FamilyAny, fmt.Errorf("%w: unknown address family %q", ErrInvalidInput, s)
	}
}

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	default:
		return "any"
	}
}

// Allows reports whether a network guarded by f accepts addresses of family
// other.
func (f Family) Allows(other Family) bool {
	return f == FamilyAny || f == other
}

func (f Family) label() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	default:
		return "any"
	}
}
