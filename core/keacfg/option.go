package keacfg

import "sort"

// Option is a single DHCP option advertised to clients.
type Option struct {
	// Name of the option (e.g. "domain-name-servers")
	Name string

	// Data holds the option value (e.g. "8.8.8.8, 1.1.1.1")
	Data string

	// AlwaysSend forces the option into every response, even if the
	// client did not ask for it
	AlwaysSend bool
}

// OptionData is the collection of DHCP options of a Dhcp4 block,
// unique by option name. The first option added under a name wins;
// later additions with the same name are silently ignored. They never
// overwrite the existing entry and never fail.
type OptionData struct {
	options map[string]Option
}

// Add inserts an option. Adding a name that is already present is a
// no-op.
func (o *OptionData) Add(name, data string, alwaysSend bool) {
	if o.options == nil {
		o.options = make(map[string]Option)
	}

	if _, ok := o.options[name]; ok {
		return
	}

	o.options[name] = Option{Name: name, Data: data, AlwaysSend: alwaysSend}
}

// AddAlways inserts an option that is always sent to clients. It
// follows the same first-write-wins rule as Add.
func (o *OptionData) AddAlways(name, data string) {
	o.Add(name, data, true)
}

// Empty returns true if no options have been added
func (o *OptionData) Empty() bool {
	return len(o.options) == 0
}

// Len returns the number of distinct option names
func (o *OptionData) Len() int {
	return len(o.options)
}

// Render produces the "option-data" fragments sorted ascending by
// option name
func (o *OptionData) Render() []OptionFragment {
	names := make([]string, 0, len(o.options))
	for name := range o.options {
		names = append(names, name)
	}
	sort.Strings(names)

	frags := make([]OptionFragment, 0, len(names))
	for _, name := range names {
		opt := o.options[name]
		frags = append(frags, OptionFragment{
			Name:       opt.Name,
			Data:       opt.Data,
			AlwaysSend: opt.AlwaysSend,
		})
	}

	return frags
}

// OptionFragment is the rendered form of a single Option.
type OptionFragment struct {
	Name       string `json:"name"`
	Data       string `json:"data"`
	AlwaysSend bool   `json:"always-send"`
}
