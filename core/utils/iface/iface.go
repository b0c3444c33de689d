// Package iface contains utility methods for interacting with
// network interfaces
package iface

import (
	"net"
)

// Exists reports whether a network interface with the given name is
// present on this host
func Exists(name string) (bool, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false, err
	}

	for _, iface := range ifaces {
		if iface.Name == name {
			return true, nil
		}
	}

	return false, nil
}

// Missing returns the subset of names that do not match any network
// interface on this host. Order is preserved.
func Missing(names []string) ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(ifaces))
	for _, iface := range ifaces {
		present[iface.Name] = struct{}{}
	}

	var missing []string
	for _, name := range names {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing, nil
}
