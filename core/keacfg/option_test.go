package keacfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OptionData_Add_FirstWriteWins(t *testing.T) {
	var od OptionData

	od.Add("routers", "192.168.1.1", false)
	require.Equal(t, 1, od.Len())

	// a second add under the same name is silently ignored
	od.Add("routers", "192.168.2.1", true)
	require.Equal(t, 1, od.Len())

	frags := od.Render()
	assert.Equal(t, "routers", frags[0].Name)
	assert.Equal(t, "192.168.1.1", frags[0].Data)
	assert.False(t, frags[0].AlwaysSend)

	// the always-send wrapper must not overwrite either
	od.AddAlways("routers", "10.0.0.1")
	require.Equal(t, 1, od.Len())

	frags = od.Render()
	assert.Equal(t, "192.168.1.1", frags[0].Data)
	assert.False(t, frags[0].AlwaysSend)
}

func Test_OptionData_AddAlways(t *testing.T) {
	var od OptionData

	od.AddAlways("domain-name-servers", "8.8.8.8, 1.1.1.1")

	frags := od.Render()
	require.Len(t, frags, 1)
	assert.Equal(t, "domain-name-servers", frags[0].Name)
	assert.Equal(t, "8.8.8.8, 1.1.1.1", frags[0].Data)
	assert.True(t, frags[0].AlwaysSend)
}

func Test_OptionData_Empty(t *testing.T) {
	var od OptionData

	assert.True(t, od.Empty())
	assert.Equal(t, 0, od.Len())

	od.Add("routers", "192.168.1.1", false)
	assert.False(t, od.Empty())
}

func Test_OptionData_Render_Order(t *testing.T) {
	var od OptionData

	od.Add("routers", "192.168.1.1", false)
	od.AddAlways("domain-name-servers", "8.8.8.8, 1.1.1.1")
	od.Add("domain-name", "example.com", true)

	frags := od.Render()
	require.Len(t, frags, 3)

	// ascending by name, not by insertion order
	assert.Equal(t, "domain-name", frags[0].Name)
	assert.Equal(t, "domain-name-servers", frags[1].Name)
	assert.Equal(t, "routers", frags[2].Name)
}
