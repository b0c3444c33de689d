package keacfg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderJSON(t *testing.T, d *Dhcp4) (string, *Diagnostic) {
	t.Helper()

	frag, diag := d.Render()
	blob, err := json.Marshal(frag)
	require.NoError(t, err)

	return string(blob), diag
}

func Test_NewDhcp4(t *testing.T) {
	d := NewDhcp4(3600, "eth0", "eth1")

	assert.Equal(t, uint64(3600), d.ValidLifetime)
	assert.Equal(t, []string{"eth0", "eth1"}, d.Interfaces.Names())
	assert.Equal(t, DefaultLeaseDatabase(), d.LeaseDatabase)
	assert.True(t, d.Subnet4.Empty())
	assert.True(t, d.OptionData.Empty())
}

func Test_Dhcp4_Render_NoInterfaces(t *testing.T) {
	d := NewDhcp4(7200)

	doc, diag := renderJSON(t, d)
	require.NotNil(t, diag)
	assert.Equal(t, CodeNoInterfaces, diag.Code)
	assert.JSONEq(t, `{"valid-lifetime": 7200}`, doc)
}

func Test_Dhcp4_Render_InvalidLeaseDatabase(t *testing.T) {
	d := NewDhcp4(7200, "eth0")
	d.LeaseDatabase = LeaseDatabase{}

	doc, diag := renderJSON(t, d)
	require.NotNil(t, diag)
	assert.Equal(t, CodeInvalidLeaseDatabase, diag.Code)
	assert.JSONEq(t, `{
		"valid-lifetime": 7200,
		"interfaces-config": {"interfaces": ["eth0"]}
	}`, doc)
}

func Test_Dhcp4_Render_NoSubnets(t *testing.T) {
	d := NewDhcp4(7200, "eth0")
	d.LeaseDatabase = NewLeaseDatabase("memfile", true, "leases.db")

	doc, diag := renderJSON(t, d)
	require.NotNil(t, diag)
	assert.Equal(t, CodeNoSubnets, diag.Code)
	assert.JSONEq(t, `{
		"valid-lifetime": 7200,
		"interfaces-config": {"interfaces": ["eth0"]},
		"lease-database": {"type": "memfile", "persist": true, "name": "leases.db"}
	}`, doc)
}

func Test_Dhcp4_Render_NoOptions(t *testing.T) {
	d := NewDhcp4(3000, "ethX")
	d.LeaseDatabase = NewLeaseDatabase("memfile", false, "leases.db")
	id := d.Subnet4.AddConfig("10.0.1.0/24")
	require.True(t, d.Subnet4.AddPoolForConfig(id, "10.0.1.100", "10.0.1.150"))

	doc, diag := renderJSON(t, d)

	// an empty option set does not stop rendering, the key is simply absent
	assert.Nil(t, diag)
	assert.JSONEq(t, `{
		"valid-lifetime": 3000,
		"interfaces-config": {"interfaces": ["ethX"]},
		"lease-database": {"type": "memfile", "persist": false, "name": "leases.db"},
		"subnet4": [
			{"id": 1, "subnet": "10.0.1.0/24", "pools": [{"pool": "10.0.1.100 - 10.0.1.150"}]}
		]
	}`, doc)
}

func Test_Dhcp4_Render_Complete(t *testing.T) {
	d := NewDhcp4(7200, "enp0s1")
	d.LeaseDatabase = NewLeaseDatabase("memfile", true, "kea-leases4.csv")

	id := d.Subnet4.AddConfig("192.168.50.0/24")
	require.True(t, d.Subnet4.AddPoolForConfig(id, "192.168.50.10", "192.168.50.20"))

	d.OptionData.AddAlways("domain-name-servers", "192.168.50.1, 8.8.8.8")
	d.OptionData.Add("routers", "192.168.50.1", false)

	doc, diag := renderJSON(t, d)
	require.Nil(t, diag)
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
	}`, doc)
}

func Test_Diagnostic_Error(t *testing.T) {
	frag, diag := NewDhcp4(100).Render()
	require.NotNil(t, frag)
	require.NotNil(t, diag)

	var err error = diag
	assert.Equal(t, diag.Message, err.Error())
}
