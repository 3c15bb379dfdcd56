package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Flarenzy/hostreg/internal/domain"
	"go.uber.org/multierr"
	"go4.org/netipx"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a registry.
type Document struct {
	Networks []Network `yaml:"networks"`
}

type Network struct {
	Name   string `yaml:"name"`
	Family string `yaml:"family,omitempty"`
	Hosts  []Host `yaml:"hosts,omitempty"`
}

type Host struct {
	IP       string `yaml:"ip"`
	Hostname string `yaml:"hostname"`
}

// Report counts what a Load accepted and rejected.
type Report struct {
	Networks int
	Hosts    int
	Rejected int
}

type Summary struct {
	Name   string
	Family domain.Family
	Hosts  int
	Ranges []netipx.IPRange
}

func Decode(r io.Reader) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("%w: parse inventory: %v", domain.ErrInvalidInput, err)
	}
	return doc, nil
}

// Load creates every network of doc and adds its hosts through svc. A
// rejected network or host does not stop the load; all failures are returned
// together.
func Load(ctx context.Context, svc domain.RegistryService, doc Document) (Report, error) {
	var (
		report Report
		errs   error
	)

	for _, n := range doc.Networks {
		if err := ctx.Err(); err != nil {
			return report, multierr.Append(errs, err)
		}

		entry, err := svc.CreateNetwork(ctx, domain.CreateNetworkInput{Name: n.Name, Family: n.Family})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("network %q: %w", n.Name, err))
			report.Rejected += 1 + len(n.Hosts)
			continue
		}
		report.Networks++

		for _, h := range n.Hosts {
			_, err = svc.AddHost(ctx, entry.ID, domain.AddHostInput{IP: h.IP, Hostname: h.Hostname})
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("network %q host %q (%s): %w", n.Name, h.Hostname, h.IP, err))
				report.Rejected++
				continue
			}
			report.Hosts++
		}
	}

	return report, errs
}

func Snapshot(ctx context.Context, svc domain.RegistryService) (Document, error) {
	entries, err := svc.ListNetworks(ctx)
	if err != nil {
		return Document{}, err
	}

	doc := Document{Networks: make([]Network, 0, len(entries))}
	for _, entry := range entries {
		hosts, err := svc.ListHosts(ctx, entry.ID)
		if err != nil {
			return Document{}, err
		}

		n := Network{Name: entry.Name}
		if entry.Family() != domain.FamilyAny {
			n.Family = entry.Family().String()
		}
		for _, h := range hosts {
			n.Hosts = append(n.Hosts, Host{IP: h.Address().String(), Hostname: h.HostName()})
		}
		doc.Networks = append(doc.Networks, n)
	}
	return doc, nil
}

// Export writes the registry held by svc as an inventory document.
func Export(ctx context.Context, svc domain.RegistryService, w io.Writer) error {
	doc, err := Snapshot(ctx, svc)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err = encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode inventory: %w", err)
	}
	return encoder.Close()
}

func Summarize(entries []domain.NetworkEntry) ([]Summary, error) {
	out := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		s := Summary{
			Name:   entry.Name,
			Family: entry.Family(),
			Hosts:  entry.HostCount(),
		}
		if entry.Network != nil {
			set, err := entry.Network.AddressSet()
			if err != nil {
				return nil, fmt.Errorf("network %q: %w", entry.Name, err)
			}
			s.Ranges = set.Ranges()
		}
		out = append(out, s)
	}
	return out, nil
}
