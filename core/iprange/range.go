// Package iprange implements parsing and validation of IPv4 address
// ranges as they appear in Kea pool declarations ("low - high").
package iprange

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
)

// Range is a range of IPv4 addresses from (inclusive) start to
// (inclusive) end IP.
type Range struct {
	Start net.IP
	End   net.IP
}

// Parse builds a Range from the low and high bound of a pool
// declaration. Both bounds must be valid IPv4 addresses and low must
// not be above high. A single-address pool (low == high) is allowed.
func Parse(low, high string) (*Range, error) {
	start := net.ParseIP(low)
	if start == nil || start.To4() == nil {
		return nil, fmt.Errorf("invalid pool start %q", low)
	}

	end := net.ParseIP(high)
	if end == nil || end.To4() == nil {
		return nil, fmt.Errorf("invalid pool end %q", high)
	}

	r := &Range{Start: start.To4(), End: end.To4()}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate the IP range and return any error encountered
func (r *Range) Validate() error {
	start4, startOk := IP2Int(r.Start)
	end4, endOk := IP2Int(r.End)

	if !startOk {
		return errors.New("invalid start IP")
	}

	if !endOk {
		return errors.New("invalid end IP")
	}

	if start4 > end4 {
		return fmt.Errorf("pool start %s above end %s", r.Start, r.End)
	}

	return nil
}

// Len returns the number of IP addresses available inside the range
func (r *Range) Len() int {
	if r == nil {
		return 0
	}

	end4, ok := IP2Int(r.End)
	if !ok {
		return 0
	}

	start4, ok := IP2Int(r.Start)
	if !ok {
		return 0
	}

	return int(end4) - int(start4) + 1
}

// Contains checks if ip is part of the range
func (r *Range) Contains(ip net.IP) bool {
	ipV4 := ip.To4()
	if ipV4 == nil {
		return false
	}

	start, ok := IP2Int(r.Start)
	if !ok {
		return false
	}

	end, ok := IP2Int(r.End)
	if !ok {
		return false
	}

	x := binary.BigEndian.Uint32(ipV4)

	return start <= x && x <= end
}

// WithinCIDR reports whether both bounds of the range belong to the
// given subnet. The cidr must be in "address/prefix" notation.
func (r *Range) WithinCIDR(cidr string) (bool, error) {
	_, ipNet, err := net.ParseCIDR(cidr)
	if err != nil {
		return false, err
	}

	return ipNet.Contains(r.Start) && ipNet.Contains(r.End), nil
}

// String returns the range in the textual pool form used by Kea,
// "<low> - <high>" with single spaces around the hyphen.
func (r *Range) String() string {
	return fmt.Sprintf("%s - %s", r.Start, r.End)
}

// IP2Int converts a IPv4 address to it's unsigned integer representation
func IP2Int(ip net.IP) (uint32, bool) {
	v4 := ip.To4()
	if v4 == nil {
		return 0, false
	}

	return binary.BigEndian.Uint32(v4), true
}

// Int2IP converts a uint32 to it's IPv4 representation
func Int2IP(i uint32) net.IP {
	r := make([]byte, 4)
	binary.BigEndian.PutUint32(r, i)
	return net.IPv4(r[0], r[1], r[2], r[3]).To4()
}
