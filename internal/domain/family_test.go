package domain

import (
	"errors"
	"net/netip"
	"testing"
)

func TestFamilyOf(t *testing.T) {
	for addr, want := range map[string]Family{
		"10.0.0.1":        FamilyIPv4,
		"::1":             FamilyIPv6,
		"::ffff:10.0.0.1": FamilyIPv6,
		"fe80::1%eth0":    FamilyIPv6,
	} {
		if got := FamilyOf(netip.MustParseAddr(addr)); got != want {
			t.Fatalf("%s: expected %v, got %v", addr, want, got)
		}
	}
	if got := FamilyOf(netip.Addr{}); got != FamilyAny {
		t.Fatalf("expected zero address to have no family, got %v", got)
	}
}

func TestParseFamily(t *testing.T) {
	for in, want := range map[string]Family{
		"":      FamilyAny,
		"any":   FamilyAny,
		"IPv4":  FamilyIPv4,
		" v4 ":  FamilyIPv4,
		"6":     FamilyIPv6,
		"ipv6":  FamilyIPv6,
		"IPV6 ": FamilyIPv6,
	} {
		got, err := ParseFamily(in)
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}

	if _, err := ParseFamily("ipx"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFamilyAllows(t *testing.T) {
	if !FamilyAny.Allows(FamilyIPv4) || !FamilyAny.Allows(FamilyIPv6) {
		t.Fatal("unrestricted family must allow both")
	}
	if FamilyIPv4.Allows(FamilyIPv6) || FamilyIPv6.Allows(FamilyIPv4) {
		t.Fatal("restricted family must reject the other one")
	}
	if FamilyIPv4.Allows(FamilyAny) {
		t.Fatal("restricted family must reject an address without family")
	}
}
