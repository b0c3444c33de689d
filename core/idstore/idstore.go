package idstore

import (
	"context"
)

// Store persists subnet id allocations across generator runs. Kea
// references subnets by id in its lease files, so a regenerated
// configuration must keep handing out the same id for the same CIDR
// or existing leases dangle. Implementations must be safe for
// concurrent use as a store may be shared by concurrent generator
// invocations.
type Store interface {
	// Get returns the id allocated for cidr, if any
	Get(ctx context.Context, cidr string) (uint64, bool, error)

	// Allocate returns the id allocated for cidr, assigning the next
	// free id if the cidr has none yet. Ids start at 1, increase
	// monotonically and are never reused.
	Allocate(ctx context.Context, cidr string) (uint64, error)

	// List returns all cidr to id allocations
	List(ctx context.Context) (map[string]uint64, error)

	// Close releases all resources held by the store
	Close() error
}
