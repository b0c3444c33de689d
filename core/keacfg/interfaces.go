package keacfg

// InterfacesConfig holds the network interfaces Kea listens on. The
// list keeps its construction order, is never deduplicated and cannot
// be modified afterwards; callers replace it wholesale instead.
type InterfacesConfig struct {
	names []string
}

// NewInterfacesConfig creates an InterfacesConfig from the given
// interface names (e.g. "eth0", "ens192")
func NewInterfacesConfig(names ...string) InterfacesConfig {
	return InterfacesConfig{names: append([]string(nil), names...)}
}

// Empty returns true if no interfaces are configured
func (i InterfacesConfig) Empty() bool {
	return len(i.names) == 0
}

// Names returns a copy of the configured interface names
func (i InterfacesConfig) Names() []string {
	return append([]string(nil), i.names...)
}

// Render produces the "interfaces-config" document fragment
func (i InterfacesConfig) Render() *InterfacesFragment {
	return &InterfacesFragment{Interfaces: append([]string{}, i.names...)}
}

// InterfacesFragment is the rendered form of an InterfacesConfig. The
// interface list always marshals as an array, even when empty.
type InterfacesFragment struct {
	Interfaces []string `json:"interfaces"`
}
