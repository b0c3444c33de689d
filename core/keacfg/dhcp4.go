package keacfg

import (
	"github.com/apex/log"
)

// DefaultValidLifetime is the lease lifetime in seconds applied when
// the caller does not provide one.
const DefaultValidLifetime uint64 = 4000

// Dhcp4 aggregates a complete DHCPv4 service definition: the lease
// lifetime, the listening interfaces, the lease database, the subnet
// registry and the option set. An instance is exclusively owned by
// its caller; none of its operations are safe for concurrent use.
type Dhcp4 struct {
	ValidLifetime uint64
	Interfaces    InterfacesConfig
	LeaseDatabase LeaseDatabase
	Subnet4       Subnet4
	OptionData    OptionData

	l log.Interface
}

// NewDhcp4 creates a Dhcp4 block with the given lease lifetime and
// listening interfaces. The lease database starts with the memfile
// defaults and may be replaced wholesale. Constructing without
// interfaces is allowed but logged since such a block cannot render
// a complete document.
func NewDhcp4(lifetime uint64, interfaces ...string) *Dhcp4 {
	d := &Dhcp4{
		ValidLifetime: lifetime,
		Interfaces:    NewInterfacesConfig(interfaces...),
		LeaseDatabase: DefaultLeaseDatabase(),
		l:             log.Log,
	}

	if d.Interfaces.Empty() {
		d.l.Warn("Dhcp4 created with empty interfaces-config")
	}

	return d
}

// SetLogger replaces the logger used for rendering diagnostics
func (d *Dhcp4) SetLogger(l log.Interface) {
	d.l = l
}

func (d *Dhcp4) logger() log.Interface {
	if d.l == nil {
		return log.Log
	}

	return d.l
}

// Render transforms the service definition into its document
// fragment. Rendering is an ordered pipeline: valid-lifetime is
// always emitted, then interfaces-config, lease-database and subnet4
// each gate the stages after them. When a gate fails the fragment
// built so far is returned together with a Diagnostic naming the
// failed check; such a partial fragment must not be fed to a server.
// An empty option set does not stop rendering, the option-data key
// is simply omitted and the nil Diagnostic marks the fragment as
// complete.
func (d *Dhcp4) Render() (*Dhcp4Fragment, *Diagnostic) {
	frag := &Dhcp4Fragment{
		ValidLifetime: d.ValidLifetime,
	}

	if d.Interfaces.Empty() {
		diag := newDiagnostic(CodeNoInterfaces, "interfaces-config is empty")
		d.logger().Warnf("rendering stopped: %s", diag.Message)

		return frag, diag
	}
	frag.InterfacesConfig = d.Interfaces.Render()

	if !d.LeaseDatabase.Valid() {
		diag := newDiagnostic(CodeInvalidLeaseDatabase, "lease-database requires a type and a name")
		d.logger().Warnf("rendering stopped: %s", diag.Message)

		return frag, diag
	}
	frag.LeaseDatabase = d.LeaseDatabase.Render()

	if d.Subnet4.Empty() {
		diag := newDiagnostic(CodeNoSubnets, "subnet4 is empty")
		d.logger().Warnf("rendering stopped: %s", diag.Message)

		return frag, diag
	}
	frag.Subnet4 = d.Subnet4.Render()

	if !d.OptionData.Empty() {
		frag.OptionData = d.OptionData.Render()
	}

	return frag, nil
}

// Dhcp4Fragment is the rendered form of a Dhcp4 block. The gated
// sections are nil, and absent from the JSON encoding, when
// rendering stopped before reaching them. OptionData is nil when the
// option set is empty.
type Dhcp4Fragment struct {
	ValidLifetime    uint64                 `json:"valid-lifetime"`
	InterfacesConfig *InterfacesFragment    `json:"interfaces-config,omitempty"`
	LeaseDatabase    *LeaseDatabaseFragment `json:"lease-database,omitempty"`
	Subnet4          []SubnetFragment       `json:"subnet4,omitempty"`
	OptionData       []OptionFragment       `json:"option-data,omitempty"`
}
