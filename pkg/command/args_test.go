package command

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs_IntCoercion(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int
		wantOK bool
	}{
		{"float64", float64(7), 7, true},
		{"float64 truncates", 7.9, 7, true},
		{"negative", float64(-3), -3, true},
		{"int", 5, 5, true},
		{"int64", int64(12), 12, true},
		{"json number", json.Number("42"), 42, true},
		{"numeric string", "15", 15, true},
		{"padded string", "  8 ", 8, true},
		{"nan", math.NaN(), 0, false},
		{"positive inf", math.Inf(1), 0, false},
		{"non-numeric string", "a lot", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Args{"v": tc.value}
			got, ok := a.IntOK("v")
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, a.Int("v"))
		})
	}
}

func TestArgs_IntOKAbsent(t *testing.T) {
	_, ok := Args{}.IntOK("missing")
	assert.False(t, ok)
}

func TestArgs_StringDefaults(t *testing.T) {
	a := Args{"s": "hello", "n": float64(3)}
	assert.Equal(t, "hello", a.String("s"))
	assert.Empty(t, a.String("n"), "non-string coerces to empty")
	assert.Empty(t, a.String("missing"))
}

func TestArgs_MapAndIntMap(t *testing.T) {
	a := Args{
		"patch":   map[string]any{"status": "done"},
		"changes": map[string]any{"guild": float64(3), "crown": "nope", "cult": "-2"},
	}
	assert.Equal(t, "done", a.Map("patch").String("status"))
	assert.Empty(t, a.Map("missing"))

	changes := a.IntMap("changes")
	assert.Equal(t, map[string]int{"guild": 3, "cult": -2}, changes)
}

func TestArgs_Lower(t *testing.T) {
	a := Args{"ability": "  Strength "}
	assert.Equal(t, "strength", a.Lower("ability"))
}
