package checkpoint

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	errs "checkpoints/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	world   string
	x, y, z float64
}

func (f fakeSource) WorldID() string {
	return f.world
}

func (f fakeSource) Coordinates() (float64, float64, float64) {
	return f.x, f.y, f.z
}

func mustRecord(t *testing.T, world string, x, y, z float64) Record {
	t.Helper()
	r, err := FromPosition(world, x, y, z)
	require.NoError(t, err)
	return r
}

func TestFromPosition(t *testing.T) {
	r, err := FromPosition("world", 1, 2.5, -3)
	require.NoError(t, err)

	assert.Equal(t, "world", r.World())
	assert.Equal(t, 1.0, r.X())
	assert.Equal(t, 2.5, r.Y())
	assert.Equal(t, -3.0, r.Z())
}

func TestFromPositionInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		world   string
		x, y, z float64
	}{
		{name: "empty world", world: ""},
		{name: "NaN coordinate", world: "world", x: math.NaN()},
		{name: "infinite coordinate", world: "world", z: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPosition(tt.world, tt.x, tt.y, tt.z)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrInvalidInput))
		})
	}
}

func TestFromSource(t *testing.T) {
	r, err := FromSource(fakeSource{world: "nether", x: 10, y: 64, z: -7.25})
	require.NoError(t, err)
	assert.True(t, r.Matches("nether", 10, 64, -7.25))

	_, err = FromSource(fakeSource{x: 1})
	assert.True(t, errors.Is(err, errs.ErrMissingWorld))

	_, err = FromSource(nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}

func TestMatches(t *testing.T) {
	r := mustRecord(t, "world", 1, 2, 3)

	assert.True(t, r.Matches("world", 1, 2, 3))
	assert.False(t, r.Matches("World", 1, 2, 3))
	assert.False(t, r.Matches("world", 1.0000001, 2, 3))
	assert.False(t, r.Matches("world", 1, 2, 4))

	// IEEE equality: negative zero equals zero
	zero := mustRecord(t, "world", 0, 0, 0)
	assert.True(t, zero.Matches("world", math.Copysign(0, -1), 0, 0))
}

func TestRecordEquality(t *testing.T) {
	assert.Equal(t, mustRecord(t, "world", 1, 2, 3), mustRecord(t, "world", 1, 2, 3))
	assert.True(t, mustRecord(t, "world", 1, 2, 3) == mustRecord(t, "world", 1, 2, 3))
	assert.False(t, mustRecord(t, "world", 1, 2, 3) == mustRecord(t, "world_nether", 1, 2, 3))
}

func TestString(t *testing.T) {
	tests := []struct {
		record Record
		want   string
	}{
		{mustRecord(t, "world", 1, 2, 3), "CheckpointRecord{world='world', x=1.0, y=2.0, z=3.0}"},
		{mustRecord(t, "the_end", -12.5, 70.125, 0), "CheckpointRecord{world='the_end', x=-12.5, y=70.125, z=0.0}"},
		{mustRecord(t, "world", 0.1, 1e6, -1), "CheckpointRecord{world='world', x=0.1, y=1000000.0, z=-1.0}"},
		{mustRecord(t, "world", 1e21, 0.0001, 0.001), "CheckpointRecord{world='world', x=1.0E21, y=1.0E-4, z=0.001}"},
		{mustRecord(t, "world", 1e7, -15000000, 9999999.5), "CheckpointRecord{world='world', x=1.0E7, y=-1.5E7, z=9999999.5}"},
		{mustRecord(t, "world", 1.25e-5, math.Copysign(0, -1), 2.5e300), "CheckpointRecord{world='world', x=1.25E-5, y=-0.0, z=2.5E300}"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.String())
		})
	}
}

func TestJSONShape(t *testing.T) {
	data, err := json.Marshal(mustRecord(t, "world", 1.5, 2, -3))
	require.NoError(t, err)

	assert.JSONEq(t, `{"worldName":"world","x":1.5,"y":2,"z":-3}`, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	records := []Record{
		mustRecord(t, "world", 0, 0, 0),
		mustRecord(t, "world_nether", -1234.5678, 64, 0.000001),
		mustRecord(t, "wörld ✓", 1e15, -1e-9, 3),
		mustRecord(t, "world", math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64),
	}

	for _, r := range records {
		t.Run(r.String(), func(t *testing.T) {
			data, err := json.Marshal(r)
			require.NoError(t, err)

			var decoded Record
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.True(t, r == decoded, "round trip changed %v into %v", r, decoded)
		})
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid syntax", data: `{"worldName":`},
		{name: "not an object", data: `[1,2,3]`},
		{name: "null", data: `null`},
		{name: "missing world", data: `{"x":1,"y":2,"z":3}`},
		{name: "missing coordinate", data: `{"worldName":"world","x":1,"y":2}`},
		{name: "null coordinate", data: `{"worldName":"world","x":1,"y":null,"z":3}`},
		{name: "string coordinate", data: `{"worldName":"world","x":"1","y":2,"z":3}`},
		{name: "numeric world", data: `{"worldName":7,"x":1,"y":2,"z":3}`},
		{name: "empty world", data: `{"worldName":"","x":1,"y":2,"z":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			err := r.UnmarshalJSON([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrMalformedRecord), "got %v", err)
			assert.Equal(t, Record{}, r)
		})
	}
}

func TestUnmarshalReportsMissingFields(t *testing.T) {
	var r Record
	err := r.UnmarshalJSON([]byte(`{"worldName":"world"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing x, y, z")
}
