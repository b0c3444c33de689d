package keacfg

// Lease database settings used when a Dhcp4 configuration is created
// without an explicit database.
const (
	DefaultLeaseDatabaseType = "memfile"
	DefaultLeaseDatabaseName = "/var/lib/kea/dhcp4.leases"
)

// LeaseDatabase describes where and how the DHCP server persists its
// address leases.
type LeaseDatabase struct {
	// Type of the database backend (e.g. "memfile", "mysql")
	Type string

	// Persist controls whether leases survive server restarts
	Persist bool

	// Name is the path or connection string of the database
	Name string
}

// NewLeaseDatabase creates a lease database descriptor
func NewLeaseDatabase(typ string, persist bool, name string) LeaseDatabase {
	return LeaseDatabase{Type: typ, Persist: persist, Name: name}
}

// DefaultLeaseDatabase returns the persistent memfile database Kea
// uses out of the box
func DefaultLeaseDatabase() LeaseDatabase {
	return NewLeaseDatabase(DefaultLeaseDatabaseType, true, DefaultLeaseDatabaseName)
}

// Valid returns true if both the database type and name are set.
// Persist has no influence on validity.
func (l LeaseDatabase) Valid() bool {
	return l.Type != "" && l.Name != ""
}

// Render produces the "lease-database" document fragment
func (l LeaseDatabase) Render() *LeaseDatabaseFragment {
	return &LeaseDatabaseFragment{
		Type:    l.Type,
		Persist: l.Persist,
		Name:    l.Name,
	}
}

// LeaseDatabaseFragment is the rendered form of a LeaseDatabase.
type LeaseDatabaseFragment struct {
	Type    string `json:"type"`
	Persist bool   `json:"persist"`
	Name    string `json:"name"`
}
