package keacfg

import (
	"encoding/json"
	"strings"
)

// KeaConfig wraps a single Dhcp4 service definition under the fixed
// top-level "Dhcp4" key of a Kea configuration file.
type KeaConfig struct {
	Dhcp4 *Dhcp4
}

// NewKeaConfig creates a KeaConfig for the given Dhcp4 block
func NewKeaConfig(d *Dhcp4) *KeaConfig {
	return &KeaConfig{Dhcp4: d}
}

// Render produces the configuration document. The Diagnostic is
// passed through from the Dhcp4 rendering; a nil Diagnostic marks
// the document as complete.
func (k *KeaConfig) Render() (*Document, *Diagnostic) {
	frag, diag := k.Dhcp4.Render()

	return &Document{Dhcp4: frag}, diag
}

// Document is a rendered Kea configuration file.
type Document struct {
	Dhcp4 *Dhcp4Fragment `json:"Dhcp4"`
}

// Dump serializes the document as JSON indented with the given
// number of spaces per nesting level
func (d *Document) Dump(indent int) ([]byte, error) {
	if indent < 0 {
		indent = 0
	}

	return json.MarshalIndent(d, "", strings.Repeat(" ", indent))
}
