package recommendation

import (
	"strings"
	"testing"
)

func TestAnalyzeGaps_Partition(t *testing.T) {
	analysis := AnalyzeGaps(
		[]string{"python", "SQL "},
		[]string{"Python", "Django", "SQL"},
		nil,
	)

	if len(analysis.MatchedSkills) != 2 {
		t.Fatalf("expected 2 matched, got %v", analysis.MatchedSkills)
	}
	if len(analysis.MissingSkills) != 1 || analysis.MissingSkills[0] != "Django" {
		t.Fatalf("expected missing [Django], got %v", analysis.MissingSkills)
	}

	// matched ∪ missing must cover the job's skill set, case-insensitively.
	covered := make(map[string]struct{})
	for _, s := range analysis.MatchedSkills {
		covered[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range analysis.MissingSkills {
		covered[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range []string{"python", "django", "sql"} {
		if _, ok := covered[s]; !ok {
			t.Fatalf("job skill %q not covered by partition", s)
		}
	}

	if analysis.MatchPercentage != 2.0/3.0 {
		t.Fatalf("match percentage: expected 2/3, got %v", analysis.MatchPercentage)
	}
}

func TestAnalyzeGaps_NotSynonymAware(t *testing.T) {
	// Gap analysis compares the literal skill text; "Golang" does not cover
	// "Go" here even though the composite skill score treats them as equal.
	analysis := AnalyzeGaps([]string{"Golang"}, []string{"Go"}, nil)
	if len(analysis.MatchedSkills) != 0 || len(analysis.MissingSkills) != 1 {
		t.Fatalf("expected Go reported missing, got matched=%v missing=%v",
			analysis.MatchedSkills, analysis.MissingSkills)
	}
}

func TestAnalyzeGaps_EmptyJobSkills(t *testing.T) {
	analysis := AnalyzeGaps([]string{"Go"}, nil, nil)
	if analysis.MatchPercentage != 1.0 {
		t.Fatalf("empty job skill set: expected match 1.0, got %v", analysis.MatchPercentage)
	}
	if len(analysis.MatchedSkills) != 0 || len(analysis.MissingSkills) != 0 {
		t.Fatalf("expected empty partition, got %+v", analysis)
	}
}

func TestAnalyzeGaps_CriticalClassification(t *testing.T) {
	reference := [][]string{
		{"Kubernetes", "Go"},
		{"kubernetes", "Terraform"},
		{"AWS"},
		{"Kubernetes", "AWS"},
	}

	analysis := AnalyzeGaps(
		[]string{"Go"},
		[]string{"Go", "Kubernetes", "Terraform"},
		reference,
	)

	// Kubernetes appears in 3/4 reference jobs, Terraform in 1/4.
	if len(analysis.CriticalMissingSkills) != 1 || analysis.CriticalMissingSkills[0] != "Kubernetes" {
		t.Fatalf("expected critical [Kubernetes], got %v", analysis.CriticalMissingSkills)
	}
	if len(analysis.NiceToHaveSkills) != 1 || analysis.NiceToHaveSkills[0] != "Terraform" {
		t.Fatalf("expected nice-to-have [Terraform], got %v", analysis.NiceToHaveSkills)
	}

	for _, c := range analysis.CriticalMissingSkills {
		for _, n := range analysis.NiceToHaveSkills {
			if strings.EqualFold(c, n) {
				t.Fatalf("skill %q classified both critical and nice-to-have", c)
			}
		}
	}
}

func TestAnalyzeGaps_NoReferenceWindow(t *testing.T) {
	analysis := AnalyzeGaps([]string{"Go"}, []string{"Go", "Rust", "Zig"}, nil)
	if len(analysis.CriticalMissingSkills) != 0 {
		t.Fatalf("no window: expected no critical skills, got %v", analysis.CriticalMissingSkills)
	}
	if len(analysis.NiceToHaveSkills) != 2 {
		t.Fatalf("no window: expected all missing nice-to-have, got %v", analysis.NiceToHaveSkills)
	}
}

func TestAnalyzeGaps_ExactlyHalfIsCritical(t *testing.T) {
	reference := [][]string{{"Rust"}, {"Go"}}
	analysis := AnalyzeGaps([]string{"Go"}, []string{"Go", "Rust"}, reference)
	if len(analysis.CriticalMissingSkills) != 1 || analysis.CriticalMissingSkills[0] != "Rust" {
		t.Fatalf("frequency 0.5 must be critical, got %v", analysis.CriticalMissingSkills)
	}
}
