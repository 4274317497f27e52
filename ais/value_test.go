package ais

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSONRoundTrip(t *testing.T) {
	cases := []Value{
		ValueInt(42),
		ValueScaled(219.3, 0.1),
		ValueBool(true),
		ValueText("SHIPNAME"),
		ValueBits([]bool{true, false, true}),
		ValueEnum(3, "RestrictedManoeuvrability"),
	}
	for _, v := range cases {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		var got Value
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, v, got)
	}
}

func TestValueUnmarshalJSONRejectsUnknownKind(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"kind":"nonsense"}`), &v)
	assert.Error(t, err)
}

func TestRecordJSONRoundTrip(t *testing.T) {
	rec := NewRecord(1, "")
	rec.Set("mmsi", ValueInt(366053209))
	rec.Set("status", ValueEnum(3, "RestrictedManoeuvrability"))
	rec.Set("lat", ValueScaled(37.802118, 1.0/600000))

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, rec.MsgType, got.MsgType)
	assert.Equal(t, rec.Uint("mmsi"), got.Uint("mmsi"))
	assert.Equal(t, rec.Text("status"), got.Text("status"))
	assert.InDelta(t, rec.Float("lat"), got.Float("lat"), 1e-9)
}
