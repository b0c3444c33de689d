package option

import (
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"

	"github.com/insomniacslk/dhcp/dhcpv4"
)

type (
	single func(string) (dhcpv4.OptionValue, error)
	list   func([]string) (dhcpv4.OptionValue, error)
)

var (
	// ErrUnknownOption is returned from Check when the option name is not
	// defined in the catalog below
	ErrUnknownOption = errors.New("unknown option")

	// options maps the standard Kea option-data names to their DHCPv4
	// option codes
	options = map[string]dhcpv4.OptionCode{
		// IP list options
		"routers":                dhcpv4.OptionRouter,
		"domain-name-servers":    dhcpv4.OptionDomainNameServer,
		"ntp-servers":            dhcpv4.OptionNTPServers,
		"dhcp-server-identifier": dhcpv4.OptionServerIdentifier,

		// IP options
		"broadcast-address": dhcpv4.OptionBroadcastAddress,
		"subnet-mask":       dhcpv4.OptionSubnetMask,

		// String options
		"host-name":               dhcpv4.OptionHostName,
		"domain-name":             dhcpv4.OptionDomainName,
		"root-path":               dhcpv4.OptionRootPath,
		"vendor-class-identifier": dhcpv4.OptionClassIdentifier,
		"tftp-server-name":        dhcpv4.OptionTFTPServerName,
		"boot-file-name":          dhcpv4.OptionBootfileName,

		// strings
		"user-class": dhcpv4.OptionUserClassInformation,
	}

	optionChecker = map[string]interface{}{
		// IP list options
		"routers":                list(IPListOption),
		"domain-name-servers":    list(IPListOption),
		"ntp-servers":            list(IPListOption),
		"dhcp-server-identifier": list(IPListOption),

		// IP options
		"broadcast-address": single(IPOption),
		"subnet-mask":       single(IPOption),

		// String options
		"host-name":               single(StringOption),
		"domain-name":             single(StringOption),
		"root-path":               single(StringOption),
		"vendor-class-identifier": single(StringOption),
		"tftp-server-name":        single(StringOption),
		"boot-file-name":          single(StringOption),

		// strings
		"user-class": list(StringListOption),
	}
)

// StringOption converts the given string into a DHCPv4 option value
func StringOption(s string) (dhcpv4.OptionValue, error) {
	return dhcpv4.String(s), nil
}

// StringListOption converts the given string slice into a DHCPv4 option value
func StringListOption(s []string) (dhcpv4.OptionValue, error) {
	return dhcpv4.Strings(s), nil
}

// IPOption converts the given string into a DHCPv4 option value
func IPOption(s string) (dhcpv4.OptionValue, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address")
	}

	return dhcpv4.IP(ip), nil
}

// IPListOption converts the given string slice into a DHCPv4 option value
func IPListOption(s []string) (dhcpv4.OptionValue, error) {
	ips := make([]net.IP, 0, len(s))

	for _, i := range s {
		ip := net.ParseIP(i)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address")
		}

		ips = append(ips, ip)
	}

	return dhcpv4.IPs(ips), nil
}

// SplitData splits a Kea option-data value on commas and trims the
// surrounding whitespace of each part. Kea separates list values with
// ", " (e.g. "192.168.50.1, 8.8.8.8").
func SplitData(data string) []string {
	parts := strings.Split(data, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// Check validates the data string for a known option name. It returns
// ErrUnknownOption for names not in the catalog. The check is advisory,
// Kea itself remains the authority on option syntax.
func Check(name, data string) error {
	if _, ok := options[name]; !ok {
		return ErrUnknownOption
	}

	checker := optionChecker[name]
	values := SplitData(data)

	var err error

	switch fn := checker.(type) {
	case list:
		_, err = fn(values)
	case single:
		if len(values) > 1 {
			return fmt.Errorf("option %s only supports one value", name)
		}
		_, err = fn(values[0])
	default:
		err = errors.New("unknown checker function")
	}

	return err
}

// Code returns the DHCPv4 option code for the known option name
func Code(name string) (dhcpv4.OptionCode, bool) {
	code, ok := options[name]
	return code, ok
}

// Known reports whether name is in the option catalog
func Known(name string) bool {
	_, ok := options[name]
	return ok
}

// Names returns all catalog option names in ascending order
func Names() []string {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
