// Package profile loads generation profiles, the input documents
// describing the DHCPv4 service a caller wants rendered. A profile is
// not a Kea configuration file; it is the generator's own input
// format and builds the service model exclusively through the public
// mutation operations of core/keacfg.
package profile

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/apex/log"
	"github.com/ghodss/yaml"
	"github.com/hhubb22/kea-conf-generate/core/idstore"
	"github.com/hhubb22/kea-conf-generate/core/iprange"
	"github.com/hhubb22/kea-conf-generate/core/keacfg"
	"github.com/hhubb22/kea-conf-generate/core/option"
)

type (
	// Profile describes one DHCPv4 service definition
	Profile struct {
		ValidLifetime uint64         `json:"valid-lifetime,omitempty"`
		Interfaces    []string       `json:"interfaces,omitempty"`
		LeaseDatabase *LeaseDatabase `json:"lease-database,omitempty"`
		Subnet4       []Subnet       `json:"subnet4,omitempty"`
		OptionData    []Option       `json:"option-data,omitempty"`
	}

	// LeaseDatabase configures where leases persist. Persist is a
	// pointer so an absent key can be told apart from an explicit
	// false.
	LeaseDatabase struct {
		Type    string `json:"type,omitempty"`
		Persist *bool  `json:"persist,omitempty"`
		Name    string `json:"name,omitempty"`
	}

	// Subnet declares one subnet and its address pools
	Subnet struct {
		Subnet string `json:"subnet"`
		Pools  []Pool `json:"pools,omitempty"`
	}

	// Pool declares a low-high address range
	Pool struct {
		Low  string `json:"low"`
		High string `json:"high"`
	}

	// Option declares a DHCP option advertised to clients
	Option struct {
		Name       string `json:"name"`
		Data       string `json:"data"`
		AlwaysSend bool   `json:"always-send,omitempty"`
	}
)

// Load reads and decodes a profile file. Profiles may be written in
// YAML or JSON, both decode through the same json-tagged structs.
// Load does not fill defaults, callers run Correct for that.
func Load(path string) (*Profile, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(contents, &p); err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}

	return &p, nil
}

// Correct fills unset fields with their defaults
func (p *Profile) Correct() {
	if p.ValidLifetime == 0 {
		p.ValidLifetime = keacfg.DefaultValidLifetime
	}
	if p.LeaseDatabase == nil {
		p.LeaseDatabase = &LeaseDatabase{}
	}
	p.LeaseDatabase.Correct()
}

// Correct fills unset fields with the memfile defaults
func (db *LeaseDatabase) Correct() {
	if db.Type == "" {
		db.Type = keacfg.DefaultLeaseDatabaseType
	}
	if db.Name == "" {
		db.Name = keacfg.DefaultLeaseDatabaseName
	}
	if db.Persist == nil {
		persist := true
		db.Persist = &persist
	}
}

// Apply builds the service model from the profile. Subnet CIDRs and
// pool bounds are validated up front and reject the whole profile
// when malformed. Option names and data are checked against the
// option catalog but only logged when unknown or malformed, Kea
// accepts names outside the catalog. When ids is non-nil every
// subnet receives its id from the store so allocations stay stable
// across generator runs.
func (p *Profile) Apply(ctx context.Context, l log.Interface, ids idstore.Store) (*keacfg.Dhcp4, error) {
	if l == nil {
		l = log.Log
	}

	d := keacfg.NewDhcp4(p.ValidLifetime, p.Interfaces...)
	d.SetLogger(l)

	if p.LeaseDatabase != nil {
		persist := true
		if p.LeaseDatabase.Persist != nil {
			persist = *p.LeaseDatabase.Persist
		}
		d.LeaseDatabase = keacfg.NewLeaseDatabase(p.LeaseDatabase.Type, persist, p.LeaseDatabase.Name)
	}

	for _, sub := range p.Subnet4 {
		if _, _, err := net.ParseCIDR(sub.Subnet); err != nil {
			return nil, fmt.Errorf("subnet %q: %s", sub.Subnet, err)
		}

		id, err := subnetID(ctx, ids, &d.Subnet4, sub.Subnet)
		if err != nil {
			return nil, err
		}

		for _, pool := range sub.Pools {
			r, err := iprange.Parse(pool.Low, pool.High)
			if err != nil {
				return nil, fmt.Errorf("subnet %q: pool: %s", sub.Subnet, err)
			}

			if ok, err := r.WithinCIDR(sub.Subnet); err == nil && !ok {
				l.Warnf("pool %s lies outside of subnet %s", r.String(), sub.Subnet)
			}

			if !d.Subnet4.AddPoolForConfig(id, pool.Low, pool.High) {
				return nil, fmt.Errorf("subnet %q: no configuration with id %d", sub.Subnet, id)
			}
		}
	}

	for _, opt := range p.OptionData {
		if err := option.Check(opt.Name, opt.Data); err != nil {
			l.Warnf("option %q: %s", opt.Name, err)
		}

		d.OptionData.Add(opt.Name, opt.Data, opt.AlwaysSend)
	}

	return d, nil
}

func subnetID(ctx context.Context, ids idstore.Store, registry *keacfg.Subnet4, cidr string) (uint64, error) {
	if ids == nil {
		return registry.AddConfig(cidr), nil
	}

	id, err := ids.Allocate(ctx, cidr)
	if err != nil {
		return 0, err
	}

	if err := registry.AddConfigWithID(id, cidr); err != nil {
		return 0, fmt.Errorf("subnet %q: %s", cidr, err)
	}

	return id, nil
}
