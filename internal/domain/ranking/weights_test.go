package ranking

import (
	"errors"
	"math"
	"testing"
)

func TestPresets_SumToOne(t *testing.T) {
	for _, name := range PresetNames() {
		w, err := Preset(name)
		if err != nil {
			t.Fatalf("preset %q: unexpected error %v", name, err)
		}
		if math.Abs(w.Sum()-1.0) > 1e-9 {
			t.Fatalf("preset %q sums to %v, want 1.0", name, w.Sum())
		}
	}
}

func TestPreset_SkillFocusedContract(t *testing.T) {
	w, err := Preset("skill_focused")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Weights{Skill: 0.50, Experience: 0.20, Seniority: 0.15, Location: 0.10, Salary: 0.05}
	if w != want {
		t.Fatalf("skill_focused = %+v, want %+v", w, want)
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("does_not_exist")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestNormalizeWeights(t *testing.T) {
	got := NormalizeWeights(Weights{Skill: 2, Experience: 1, Seniority: 1, Location: 1, Salary: 5})
	if math.Abs(got.Sum()-1.0) > 1e-9 {
		t.Fatalf("normalized sum = %v, want 1.0", got.Sum())
	}
	if math.Abs(got.Skill-0.2) > 1e-9 || math.Abs(got.Salary-0.5) > 1e-9 {
		t.Fatalf("unexpected normalization: %+v", got)
	}
}

func TestNormalizeWeights_ZeroFallback(t *testing.T) {
	got := NormalizeWeights(Weights{})
	want := Weights{Skill: 0.2, Experience: 0.2, Seniority: 0.2, Location: 0.2, Salary: 0.2}
	if got != want {
		t.Fatalf("zero input: got %+v, want equal fifths", got)
	}
}

func TestMatchPresetName(t *testing.T) {
	w := Weights{Skill: 0.3000004, Experience: 0.25, Seniority: 0.15, Location: 0.15, Salary: 0.15}
	name, ok := MatchPresetName(w)
	if !ok || name != "balanced" {
		t.Fatalf("expected balanced within tolerance, got %q ok=%v", name, ok)
	}

	if name, ok := MatchPresetName(Weights{Skill: 0.9, Salary: 0.1}); ok {
		t.Fatalf("expected no preset match, got %q", name)
	}
}
