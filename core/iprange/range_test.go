package iprange

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	cases := []struct {
		Low  string
		High string
		Err  bool
	}{
		{"192.168.50.10", "192.168.50.20", false},
		{"192.168.50.10", "192.168.50.10", false},
		{"192.168.50.20", "192.168.50.10", true},
		{"not-an-ip", "192.168.50.10", true},
		{"192.168.50.10", "not-an-ip", true},
		{"", "192.168.50.10", true},
		{"fe80::1", "fe80::2", true},
	}

	for i, c := range cases {
		r, err := Parse(c.Low, c.High)
		if c.Err {
			assert.Error(t, err, "Test case #%d failed", i)
			assert.Nil(t, r, "Test case #%d failed", i)
		} else {
			assert.NoError(t, err, "Test case #%d failed", i)
			assert.NotNil(t, r, "Test case #%d failed", i)
		}
	}
}

func Test_Range_Len(t *testing.T) {
	cases := []struct {
		I Range
		E int
	}{
		{
			Range{
				Start: net.ParseIP("10.0.0.0"),
				End:   net.ParseIP("10.0.0.0"),
			},
			1,
		},
		{
			Range{
				Start: net.ParseIP("10.0.0.1"),
				End:   net.ParseIP("10.0.0.100"),
			},
			100,
		},
		// invalid ranges
		{
			Range{
				Start: nil,
				End:   net.ParseIP("10.0.1.100"),
			},
			0,
		},
		{
			Range{
				Start: net.ParseIP("10.0.1.10"),
				End:   net.IP{0, 1},
			},
			0,
		},
	}

	for i, c := range cases {
		assert.Equal(t, c.E, c.I.Len(), "Test case #%d failed", i)
	}
}

func Test_Range_Contains(t *testing.T) {
	r, err := Parse("192.168.0.100", "192.168.2.10")
	require.NoError(t, err)

	cases := []struct {
		IP string
		E  bool
	}{
		{"192.168.0.100", true},
		{"192.168.2.10", true},
		{"192.168.1.0", true},
		{"192.168.3.100", false},
		{"1.1.1.1", false},
	}

	for i, c := range cases {
		ip := net.ParseIP(c.IP)

		assert.Equal(t, c.E, r.Contains(ip), "Test case #%d failed", i)
	}
}

func Test_Range_WithinCIDR(t *testing.T) {
	r, err := Parse("192.168.50.10", "192.168.50.20")
	require.NoError(t, err)

	ok, err := r.WithinCIDR("192.168.50.0/24")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.WithinCIDR("10.0.0.0/8")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.WithinCIDR("not-a-cidr")
	assert.Error(t, err)
}

func Test_Range_String(t *testing.T) {
	r, err := Parse("192.168.50.10", "192.168.50.20")
	require.NoError(t, err)

	assert.Equal(t, "192.168.50.10 - 192.168.50.20", r.String())
}
