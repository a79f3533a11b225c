package reputation

import (
	"testing"

	"pgregory.net/rapid"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		value int
		want  int
	}{
		{37, 20},
		{-45, -20},
		{0, 0},
		{20, 20},
		{-20, -20},
		{19, 19},
	}
	for _, tt := range tests {
		if got := Clamp(tt.value); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestClamp_RepeatedDeltas(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := 0
		n := rapid.IntRange(1, 50).Draw(t, "n")
		for i := 0; i < n; i++ {
			delta := rapid.IntRange(-1000, 1000).Draw(t, "delta")
			value = Clamp(value + delta)
			if value < MinStanding || value > MaxStanding {
				t.Fatalf("standing %d escaped bounds", value)
			}
		}
	})
}

func TestTierIndex(t *testing.T) {
	tests := []struct {
		value int
		want  int
	}{
		{-20, 0},
		{-16, 0},
		{-15, 1},
		{-1, 3},
		{0, 4},
		{4, 4},
		{5, 5},
		{19, 7},
		{20, 8},
		{100, 8},
		{-100, 0},
	}
	for _, tt := range tests {
		if got := TierIndex(tt.value); got != tt.want {
			t.Errorf("TierIndex(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestTierIndex_AlwaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.IntRange(-10000, 10000).Draw(t, "value")
		idx := TierIndex(value)
		if idx < 0 || idx >= TierCount {
			t.Fatalf("TierIndex(%d) = %d out of range", value, idx)
		}
	})
}

func TestDispositionLabel_Tiered(t *testing.T) {
	labels := FactionLabels{Tiers: DefaultTierLabels[:]}

	if got := DispositionLabel(labels, 0); got != "neutral" {
		t.Errorf("DispositionLabel(0) = %q, want neutral", got)
	}
	if got := DispositionLabel(labels, 20); got != "revered" {
		t.Errorf("DispositionLabel(20) = %q, want revered", got)
	}
	if got := DispositionLabel(labels, -20); got != "hated" {
		t.Errorf("DispositionLabel(-20) = %q, want hated", got)
	}
}

func TestDispositionLabel_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		labels FactionLabels
		value  int
		want   string
	}{
		{"positive", FactionLabels{Positive: "ally"}, 10, "ally"},
		{"negative", FactionLabels{Negative: "enemy"}, -10, "enemy"},
		{"warning defined", FactionLabels{Warning: "suspicious"}, -5, "suspicious"},
		{"warning undefined falls to neutral", FactionLabels{}, -5, "neutral"},
		{"neutral", FactionLabels{}, 3, "neutral"},
		{"generic positive", FactionLabels{}, 15, "positive"},
		{"negative beats warning", FactionLabels{Warning: "suspicious"}, -12, "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DispositionLabel(tt.labels, tt.value); got != tt.want {
				t.Errorf("DispositionLabel(%d) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestForNPC(t *testing.T) {
	tests := []struct {
		value int
		want  NPCDisposition
	}{
		{15, DispositionTrusted},
		{20, DispositionTrusted},
		{5, DispositionFriendly},
		{14, DispositionFriendly},
		{-15, DispositionHostile},
		{-20, DispositionHostile},
		{-5, DispositionWary},
		{-14, DispositionWary},
		{0, DispositionNeutral},
		{4, DispositionNeutral},
		{-4, DispositionNeutral},
	}
	for _, tt := range tests {
		if got := ForNPC(tt.value); got != tt.want {
			t.Errorf("ForNPC(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPositionOnScale(t *testing.T) {
	tests := []struct {
		value int
		want  float64
	}{
		{-20, 0},
		{0, 50},
		{20, 100},
		{10, 75},
		{1000, 100},
		{-1000, 0},
	}
	for _, tt := range tests {
		if got := PositionOnScale(tt.value); got != tt.want {
			t.Errorf("PositionOnScale(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := DisplayLabel("revered"); got != "Revered" {
		t.Errorf("DisplayLabel = %q, want Revered", got)
	}
}
