package checkpoint

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	errs "checkpoints/pkg/errors"
)

// PositionSource resolves where an actor currently stands. An empty WorldID
// means the world could not be resolved.
type PositionSource interface {
	WorldID() string
	Coordinates() (x, y, z float64)
}

// Record is a checkpoint: a position inside a named world.
// Records are immutable and compare with == (exact match on all four fields).
type Record struct {
	world   string
	x, y, z float64
}

// FromPosition creates a record for a position in the given world
func FromPosition(world string, x, y, z float64) (Record, error) {
	if world == "" {
		return Record{}, errs.New(errs.ErrorTypeInvalidInput, "from position", "world is required")
	}
	for _, v := range []float64{x, y, z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, errs.New(errs.ErrorTypeInvalidInput, "from position", "coordinates must be finite")
		}
	}
	return Record{world: world, x: x, y: y, z: z}, nil
}

// FromSource creates a record for the current position of src
func FromSource(src PositionSource) (Record, error) {
	if src == nil {
		return Record{}, errs.New(errs.ErrorTypeInvalidInput, "from source", "position source is required")
	}
	world := src.WorldID()
	if world == "" {
		return Record{}, errs.New(errs.ErrorTypeMissingWorld, "from source", "location must have a world")
	}
	x, y, z := src.Coordinates()
	return FromPosition(world, x, y, z)
}

// World returns the world the checkpoint belongs to
func (r Record) World() string { return r.world }

// X returns the x coordinate
func (r Record) X() float64 { return r.x }

// Y returns the y coordinate
func (r Record) Y() float64 { return r.y }

// Z returns the z coordinate
func (r Record) Z() float64 { return r.z }

// Matches reports whether the record sits exactly at the given position.
// Coordinates are compared with ==, no tolerance.
func (r Record) Matches(world string, x, y, z float64) bool {
	return r.world == world && r.x == x && r.y == y && r.z == z
}

// String renders the record for listings
func (r Record) String() string {
	return fmt.Sprintf("CheckpointRecord{world='%s', x=%s, y=%s, z=%s}",
		r.world, formatCoordinate(r.x), formatCoordinate(r.y), formatCoordinate(r.z))
}

// formatCoordinate prints the shortest form with at least one fractional
// digit (1 -> "1.0"). Magnitudes below 1e-3 or from 1e7 up use an exponent
// (1e21 -> "1.0E21", 0.0001 -> "1.0E-4").
func formatCoordinate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	abs := math.Abs(v)
	if v != 0 && (abs < 1e-3 || abs >= 1e7) {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
		if !strings.ContainsRune(mantissa, '.') {
			mantissa += ".0"
		}
		n, _ := strconv.Atoi(exp)
		return mantissa + "E" + strconv.Itoa(n)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

// recordJSON is the stored shape of a record. Pointers tell absent fields
// apart from zero values.
type recordJSON struct {
	WorldName *string  `json:"worldName"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Z         *float64 `json:"z"`
}

// MarshalJSON encodes the record as {"worldName", "x", "y", "z"}
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		WorldName: &r.world,
		X:         &r.x,
		Y:         &r.y,
		Z:         &r.z,
	})
}

// UnmarshalJSON decodes a stored record. Every field must be present and of
// the right type, otherwise a malformed_record error is returned.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return &errs.Error{Type: errs.ErrorTypeMalformedRecord, Op: "decode record", Message: "invalid checkpoint", Err: err}
	}

	var missing []string
	if raw.WorldName == nil {
		missing = append(missing, "worldName")
	}
	if raw.X == nil {
		missing = append(missing, "x")
	}
	if raw.Y == nil {
		missing = append(missing, "y")
	}
	if raw.Z == nil {
		missing = append(missing, "z")
	}
	if len(missing) > 0 {
		return errs.New(errs.ErrorTypeMalformedRecord, "decode record", "missing "+strings.Join(missing, ", "))
	}
	if *raw.WorldName == "" {
		return errs.New(errs.ErrorTypeMalformedRecord, "decode record", "worldName must not be empty")
	}

	*r = Record{world: *raw.WorldName, x: *raw.X, y: *raw.Y, z: *raw.Z}
	return nil
}
