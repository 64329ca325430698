package ranking

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownPreset = errors.New("unknown preset")

// Weights holds one non-negative weight per scoring dimension. After
// normalization the components sum to 1.0.
type Weights struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Seniority  float64 `json:"seniority"`
	Location   float64 `json:"location"`
	Salary     float64 `json:"salary"`
}

const DefaultPreset = "balanced"

// presetNames fixes the iteration order; the numbers are a published contract
// that external callers compare against with a 0.001 tolerance.
var presetNames = []string{
	"skill_focused",
	"career_growth",
	"compensation_first",
	"remote_priority",
	"balanced",
}

var presets = map[string]Weights{
	"skill_focused":      {Skill: 0.50, Experience: 0.20, Seniority: 0.15, Location: 0.10, Salary: 0.05},
	"career_growth":      {Skill: 0.30, Experience: 0.35, Seniority: 0.20, Location: 0.10, Salary: 0.05},
	"compensation_first": {Skill: 0.25, Experience: 0.20, Seniority: 0.10, Location: 0.10, Salary: 0.35},
	"remote_priority":    {Skill: 0.30, Experience: 0.20, Seniority: 0.10, Location: 0.30, Salary: 0.10},
	"balanced":           {Skill: 0.30, Experience: 0.25, Seniority: 0.15, Location: 0.15, Salary: 0.15},
}

func PresetNames() []string {
	out := make([]string, len(presetNames))
	copy(out, presetNames)
	return out
}

func Preset(name string) (Weights, error) {
	w, ok := presets[strings.TrimSpace(name)]
	if !ok {
		return Weights{}, fmt.Errorf("%w: %s (available: %s)", ErrUnknownPreset, name, strings.Join(presetNames, ", "))
	}
	return w, nil
}

func (w Weights) Sum() float64 {
	return w.Skill + w.Experience + w.Seniority + w.Location + w.Salary
}

// NormalizeWeights scales the vector so its components sum to 1.0. An
// all-zero input falls back to equal fifths.
func NormalizeWeights(w Weights) Weights {
	total := w.Sum()
	if total == 0 {
		return Weights{Skill: 0.2, Experience: 0.2, Seniority: 0.2, Location: 0.2, Salary: 0.2}
	}
	return Weights{
		Skill:      w.Skill / total,
		Experience: w.Experience / total,
		Seniority:  w.Seniority / total,
		Location:   w.Location / total,
		Salary:     w.Salary / total,
	}
}

// MatchPresetName reports which published preset the vector corresponds to,
// comparing each field with a 0.001 tolerance.
func MatchPresetName(w Weights) (string, bool) {
	for _, name := range presetNames {
		p := presets[name]
		if math.Abs(w.Skill-p.Skill) < 0.001 &&
			math.Abs(w.Experience-p.Experience) < 0.001 &&
			math.Abs(w.Seniority-p.Seniority) < 0.001 &&
			math.Abs(w.Location-p.Location) < 0.001 &&
			math.Abs(w.Salary-p.Salary) < 0.001 {
			return name, true
		}
	}
	return "", false
}
