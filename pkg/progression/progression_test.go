package progression

import "testing"

func TestAbilityRequirement_Monotonic(t *testing.T) {
	prev := 0
	for score := 1; score <= 29; score++ {
		req, ok := AbilityRequirement(score)
		if !ok {
			t.Fatalf("AbilityRequirement(%d) reported cap before 30", score)
		}
		if req < prev {
			t.Errorf("AbilityRequirement(%d) = %d, decreased from %d", score, req, prev)
		}
		prev = req
	}
}

func TestAbilityRequirement_Cap(t *testing.T) {
	if _, ok := AbilityRequirement(30); ok {
		t.Error("expected no requirement at the score cap")
	}
	if _, ok := AbilityRequirement(45); ok {
		t.Error("expected no requirement above the score cap")
	}
}

func TestAbilityRequirement_Bands(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, 2},
		{2, 2},
		{3, 3},
		{10, 6},
		{18, 12},
		{19, 14},
		{29, 42},
	}
	for _, tt := range tests {
		got, ok := AbilityRequirement(tt.score)
		if !ok {
			t.Errorf("AbilityRequirement(%d) unexpectedly capped", tt.score)
			continue
		}
		if got != tt.want {
			t.Errorf("AbilityRequirement(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, -5},
		{8, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{20, 5},
		{30, 10},
		{0, 0},  // unset defaults to 10
		{-3, 0}, // invalid defaults to 10
	}
	for _, tt := range tests {
		if got := AbilityModifier(tt.score); got != tt.want {
			t.Errorf("AbilityModifier(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestSaveModifier_Clamped(t *testing.T) {
	if got := SaveModifier(1); got != 0 {
		t.Errorf("SaveModifier(1) = %d, want 0", got)
	}
	if got := SaveModifier(30); got != 5 {
		t.Errorf("SaveModifier(30) = %d, want 5", got)
	}
	if got := SaveModifier(14); got != 2 {
		t.Errorf("SaveModifier(14) = %d, want 2", got)
	}
}

func TestApplyAbilityExperience(t *testing.T) {
	tests := []struct {
		name         string
		score        int
		progress     int
		amount       int
		wantScore    int
		wantProgress int
	}{
		{"single rollover", 18, 10, 5, 19, 3},
		{"no rollover", 10, 1, 2, 10, 3},
		{"multiple rollovers", 1, 0, 8, 4, 1},
		{"caps and discards", 29, 0, 500, 30, 0},
		{"already capped", 30, 0, 10, 30, 0},
		{"zero amount clamps only", 12, -4, 0, 12, 0},
		{"negative amount is no-op", 12, 3, -5, 12, 3},
		{"unset score defaults", 0, 0, 1, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, progress := ApplyAbilityExperience(tt.score, tt.progress, tt.amount)
			if score != tt.wantScore || progress != tt.wantProgress {
				t.Errorf("ApplyAbilityExperience(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.score, tt.progress, tt.amount, score, progress, tt.wantScore, tt.wantProgress)
			}
		})
	}
}

func TestSkillRequirement(t *testing.T) {
	if got := SkillRequirement(0); got != 2 {
		t.Errorf("SkillRequirement(0) = %d, want 2", got)
	}
	if got := SkillRequirement(-3); got != 2 {
		t.Errorf("SkillRequirement(-3) = %d, want 2", got)
	}
	if got := SkillRequirement(7); got != 9 {
		t.Errorf("SkillRequirement(7) = %d, want 9", got)
	}
}

func TestApplySkillExperience(t *testing.T) {
	tests := []struct {
		name         string
		level        int
		progress     int
		amount       int
		wantLevel    int
		wantProgress int
		wantPoints   int
	}{
		{"crosses one tier", 2, 1, 10, 4, 2, 1},
		{"no level gained", 5, 0, 3, 5, 3, 0},
		{"crosses two tiers", 0, 0, 30, 6, 3, 2},
		{"negative amount", 4, 2, -1, 4, 2, 0},
		{"negative inputs clamp", -2, -2, 1, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, progress, points := ApplySkillExperience(tt.level, tt.progress, tt.amount)
			if level != tt.wantLevel || progress != tt.wantProgress || points != tt.wantPoints {
				t.Errorf("ApplySkillExperience(%d, %d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.level, tt.progress, tt.amount, level, progress, points,
					tt.wantLevel, tt.wantProgress, tt.wantPoints)
			}
		})
	}
}

func TestSpendSkillPoint(t *testing.T) {
	scores := map[string]int{"strength": 14, "wisdom": 30}
	progress := map[string]int{"strength": 6}

	newScores, newProgress, points, ok := SpendSkillPoint(scores, progress, 2, "strength")
	if !ok {
		t.Fatal("expected spend to succeed")
	}
	if newScores["strength"] != 15 {
		t.Errorf("strength = %d, want 15", newScores["strength"])
	}
	if newProgress["strength"] != 0 {
		t.Errorf("strength progress = %d, want 0", newProgress["strength"])
	}
	if points != 1 {
		t.Errorf("points = %d, want 1", points)
	}

	// Originals must not be mutated.
	if scores["strength"] != 14 || progress["strength"] != 6 {
		t.Error("input maps were mutated")
	}
}

func TestSpendSkillPoint_Failures(t *testing.T) {
	scores := map[string]int{"wisdom": 30}

	if _, _, _, ok := SpendSkillPoint(scores, nil, 0, "strength"); ok {
		t.Error("expected failure with empty pool")
	}
	if _, _, _, ok := SpendSkillPoint(scores, nil, 3, "wisdom"); ok {
		t.Error("expected failure at capped ability")
	}
}

func TestSpendSkillPoint_UnsetAbility(t *testing.T) {
	newScores, newProgress, points, ok := SpendSkillPoint(nil, nil, 1, "dexterity")
	if !ok {
		t.Fatal("expected spend on unset ability to succeed")
	}
	if newScores["dexterity"] != 11 {
		t.Errorf("dexterity = %d, want 11 (default 10 + 1)", newScores["dexterity"])
	}
	if newProgress["dexterity"] != 0 {
		t.Errorf("dexterity progress = %d, want 0", newProgress["dexterity"])
	}
	if points != 0 {
		t.Errorf("points = %d, want 0", points)
	}
}

func TestApplyAbilityExperience_ChainedNeverExceedsCap(t *testing.T) {
	score, progress := 1, 0
	for i := 0; i < 200; i++ {
		score, progress = ApplyAbilityExperience(score, progress, 17)
		if score > AbilityScoreCap {
			t.Fatalf("score %d exceeded cap", score)
		}
		if req, ok := AbilityRequirement(score); ok && progress >= req {
			t.Fatalf("progress %d not below requirement %d at score %d", progress, req, score)
		}
		if score == AbilityScoreCap && progress != 0 {
			t.Fatalf("progress %d at cap, want 0", progress)
		}
	}
	if score != AbilityScoreCap {
		t.Errorf("expected score to reach cap after repeated grants, got %d", score)
	}
}
