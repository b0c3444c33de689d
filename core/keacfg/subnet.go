package keacfg

import (
	"errors"
	"fmt"
	"sort"
)

// Pool is a contiguous low-high address range available for lease
// within a subnet. Range holds the literal "<low> - <high>" form that
// appears in the rendered document.
type Pool struct {
	Range string
}

// Cfg is the configuration of a single IPv4 subnet: its registry id,
// its CIDR and the address pools leased from it.
type Cfg struct {
	ID     uint64
	Subnet string

	pools map[string]struct{}
}

// Pools returns the subnet's pools sorted ascending by their range
// string. The order is lexicographic on the full range text, not
// numeric: "192.168.1.100 - ..." sorts before "192.168.1.50 - ...".
func (c *Cfg) Pools() []Pool {
	ranges := make([]string, 0, len(c.pools))
	for r := range c.pools {
		ranges = append(ranges, r)
	}
	sort.Strings(ranges)

	pools := make([]Pool, 0, len(ranges))
	for _, r := range ranges {
		pools = append(pools, Pool{Range: r})
	}

	return pools
}

// Render produces the subnet4 entry for this subnet
func (c *Cfg) Render() SubnetFragment {
	pools := c.Pools()

	frag := SubnetFragment{
		ID:     c.ID,
		Subnet: c.Subnet,
		Pools:  make([]PoolFragment, 0, len(pools)),
	}
	for _, p := range pools {
		frag.Pools = append(frag.Pools, PoolFragment{Pool: p.Range})
	}

	return frag
}

// Subnet4 manages the IPv4 subnet configurations of a Dhcp4 block.
// Ids are handed out by a monotonically increasing counter starting
// at 1 and are never reused.
type Subnet4 struct {
	lastID uint64
	cfgs   map[uint64]*Cfg
}

// AddConfig adds a new subnet configuration for the given CIDR (e.g.
// "192.168.1.0/24") and returns the id assigned to it
func (s *Subnet4) AddConfig(cidr string) uint64 {
	s.lastID++
	id := s.lastID

	if s.cfgs == nil {
		s.cfgs = make(map[uint64]*Cfg)
	}
	s.cfgs[id] = &Cfg{ID: id, Subnet: cidr}

	return id
}

// AddConfigWithID adds a subnet configuration under a caller-provided
// id. Ids usually come from a durable allocator that keeps them
// stable across generator runs. The id must be positive and unused;
// the internal counter is advanced past it so mixing with AddConfig
// cannot collide.
func (s *Subnet4) AddConfigWithID(id uint64, cidr string) error {
	if id == 0 {
		return errors.New("subnet id must be positive")
	}

	if _, ok := s.cfgs[id]; ok {
		return fmt.Errorf("subnet id %d already in use", id)
	}

	if s.cfgs == nil {
		s.cfgs = make(map[uint64]*Cfg)
	}
	s.cfgs[id] = &Cfg{ID: id, Subnet: cidr}

	if id > s.lastID {
		s.lastID = id
	}

	return nil
}

// AddPoolForConfig adds the address pool [low, high] to the subnet
// identified by id. It returns false if no subnet with that id
// exists; nothing is mutated in that case. Adding the same range
// twice collapses into a single pool.
func (s *Subnet4) AddPoolForConfig(id uint64, low, high string) bool {
	cfg, ok := s.cfgs[id]
	if !ok {
		return false
	}

	if cfg.pools == nil {
		cfg.pools = make(map[string]struct{})
	}
	cfg.pools[low+" - "+high] = struct{}{}

	return true
}

// Empty returns true if no subnet configurations exist
func (s *Subnet4) Empty() bool {
	return len(s.cfgs) == 0
}

// Len returns the number of subnet configurations
func (s *Subnet4) Len() int {
	return len(s.cfgs)
}

// Render produces the subnet4 fragments sorted ascending by id, so
// the rendered document is stable and diffable across runs
func (s *Subnet4) Render() []SubnetFragment {
	ids := make([]uint64, 0, len(s.cfgs))
	for id := range s.cfgs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	frags := make([]SubnetFragment, 0, len(ids))
	for _, id := range ids {
		frags = append(frags, s.cfgs[id].Render())
	}

	return frags
}

// PoolFragment is the rendered form of a single Pool.
type PoolFragment struct {
	Pool string `json:"pool"`
}

// SubnetFragment is the rendered form of a single subnet
// configuration. Pools always marshals as an array, even when empty.
type SubnetFragment struct {
	ID     uint64         `json:"id"`
	Subnet string         `json:"subnet"`
	Pools  []PoolFragment `json:"pools"`
}
