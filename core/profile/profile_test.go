package profile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhubb22/kea-conf-generate/core/idstore/drivers/memory"
	"github.com/hhubb22/kea-conf-generate/core/keacfg"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func Test_Load(t *testing.T) {
	path := writeProfile(t, `
valid-lifetime: 7200
interfaces:
  - enp0s1
lease-database:
  type: memfile
  persist: false
  name: kea-leases4.csv
subnet4:
  - subnet: 192.168.50.0/24
    pools:
      - low: 192.168.50.10
        high: 192.168.50.20
option-data:
  - name: routers
    data: 192.168.50.1
`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(7200), p.ValidLifetime)
	assert.Equal(t, []string{"enp0s1"}, p.Interfaces)

	require.NotNil(t, p.LeaseDatabase)
	assert.Equal(t, "memfile", p.LeaseDatabase.Type)
	require.NotNil(t, p.LeaseDatabase.Persist)
	assert.False(t, *p.LeaseDatabase.Persist)
	assert.Equal(t, "kea-leases4.csv", p.LeaseDatabase.Name)

	require.Len(t, p.Subnet4, 1)
	assert.Equal(t, "192.168.50.0/24", p.Subnet4[0].Subnet)
	assert.Equal(t, []Pool{{Low: "192.168.50.10", High: "192.168.50.20"}}, p.Subnet4[0].Pools)

	assert.Equal(t, []Option{{Name: "routers", Data: "192.168.50.1"}}, p.OptionData)
}

func Test_Load_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)

	_, err = Load(writeProfile(t, "interfaces: [\n"))
	assert.Error(t, err)
}

func Test_Profile_Correct(t *testing.T) {
	var p Profile
	p.Correct()

	assert.Equal(t, keacfg.DefaultValidLifetime, p.ValidLifetime)

	require.NotNil(t, p.LeaseDatabase)
	assert.Equal(t, keacfg.DefaultLeaseDatabaseType, p.LeaseDatabase.Type)
	assert.Equal(t, keacfg.DefaultLeaseDatabaseName, p.LeaseDatabase.Name)
	require.NotNil(t, p.LeaseDatabase.Persist)
	assert.True(t, *p.LeaseDatabase.Persist)
}

func Test_Profile_Correct_KeepsExplicitValues(t *testing.T) {
	persist := false
	p := Profile{
		ValidLifetime: 7200,
		LeaseDatabase: &LeaseDatabase{Type: "mysql", Persist: &persist, Name: "kea"},
	}
	p.Correct()

	assert.Equal(t, uint64(7200), p.ValidLifetime)
	assert.Equal(t, "mysql", p.LeaseDatabase.Type)
	assert.False(t, *p.LeaseDatabase.Persist)
	assert.Equal(t, "kea", p.LeaseDatabase.Name)
}

func Test_Profile_Apply(t *testing.T) {
	path := writeProfile(t, `
valid-lifetime: 7200
interfaces:
  - enp0s1
lease-database:
  type: memfile
  persist: true
  name: kea-leases4.csv
subnet4:
  - subnet: 192.168.50.0/24
    pools:
      - low: 192.168.50.10
        high: 192.168.50.20
option-data:
  - name: domain-name-servers
    data: 192.168.50.1, 8.8.8.8
    always-send: true
  - name: routers
    data: 192.168.50.1
`)

	p, err := Load(path)
	require.NoError(t, err)
	p.Correct()

	d, err := p.Apply(context.Background(), nil, nil)
	require.NoError(t, err)

	frag, diag := d.Render()
	require.Nil(t, diag)

	blob, err := json.Marshal(frag)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"valid-lifetime": 7200,
		"interfaces-config": {"interfaces": ["enp0s1"]},
		"lease-database": {"type": "memfile", "persist": true, "name": "kea-leases4.csv"},
		"subnet4": [
			{"id": 1, "subnet": "192.168.50.0/24", "pools": [{"pool": "192.168.50.10 - 192.168.50.20"}]}
		],
		"option-data": [
			{"name": "domain-name-servers", "data": "192.168.50.1, 8.8.8.8", "always-send": true},
			{"name": "routers", "data": "192.168.50.1", "always-send": false}
		]
	}`, string(blob))
}

func Test_Profile_Apply_Errors(t *testing.T) {
	cases := []struct {
		I Profile
	}{
		{Profile{Subnet4: []Subnet{{Subnet: "not-a-cidr"}}}},
		{Profile{Subnet4: []Subnet{{Subnet: "10.0.0.0/24", Pools: []Pool{{Low: "10.0.0.200", High: "10.0.0.100"}}}}}},
		{Profile{Subnet4: []Subnet{{Subnet: "10.0.0.0/24", Pools: []Pool{{Low: "not-an-ip", High: "10.0.0.100"}}}}}},
		{Profile{Subnet4: []Subnet{{Subnet: "10.0.0.0/24", Pools: []Pool{{Low: "2001:db8::1", High: "2001:db8::ff"}}}}}},
	}

	for i, c := range cases {
		c.I.Interfaces = []string{"eth0"}

		_, err := c.I.Apply(context.Background(), nil, nil)
		assert.Error(t, err, "Test case #%d failed", i)
	}
}

func Test_Profile_Apply_UnknownOption(t *testing.T) {
	p := Profile{
		Interfaces: []string{"eth0"},
		OptionData: []Option{{Name: "no-such-option", Data: "x"}},
	}

	d, err := p.Apply(context.Background(), nil, nil)
	require.NoError(t, err)

	// unknown names are logged but still applied
	assert.Equal(t, 1, d.OptionData.Len())
}

func Test_Profile_Apply_WithStore(t *testing.T) {
	store := memory.New()
	defer store.Close()

	first := Profile{
		Interfaces: []string{"eth0"},
		Subnet4:    []Subnet{{Subnet: "10.0.1.0/24"}, {Subnet: "10.0.2.0/24"}},
	}

	d, err := first.Apply(context.Background(), nil, store)
	require.NoError(t, err)
	assertSubnetIDs(t, d, map[string]uint64{"10.0.1.0/24": 1, "10.0.2.0/24": 2})

	// a later run drops the first subnet and adds a new one, known
	// subnets keep their id and the dropped id is not reused
	second := Profile{
		Interfaces: []string{"eth0"},
		Subnet4:    []Subnet{{Subnet: "10.0.2.0/24"}, {Subnet: "10.0.3.0/24"}},
	}

	d, err = second.Apply(context.Background(), nil, store)
	require.NoError(t, err)
	assertSubnetIDs(t, d, map[string]uint64{"10.0.2.0/24": 2, "10.0.3.0/24": 3})
}

func Test_Profile_Apply_DuplicateSubnetWithStore(t *testing.T) {
	store := memory.New()
	defer store.Close()

	p := Profile{
		Interfaces: []string{"eth0"},
		Subnet4:    []Subnet{{Subnet: "10.0.1.0/24"}, {Subnet: "10.0.1.0/24"}},
	}

	_, err := p.Apply(context.Background(), nil, store)
	assert.Error(t, err)
}

func assertSubnetIDs(t *testing.T, d *keacfg.Dhcp4, expected map[string]uint64) {
	t.Helper()

	got := make(map[string]uint64)
	for _, frag := range d.Subnet4.Render() {
		got[frag.Subnet] = frag.ID
	}

	assert.Equal(t, expected, got)
}
