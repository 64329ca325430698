package recommendation

import (
	"strings"
	"testing"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/ranking"
)

func intPtr(v int) *int { return &v }

func baseCandidate() candidate.Profile {
	return candidate.Profile{
		Skills:          []string{"Go", "PostgreSQL"},
		ExperienceYears: 5,
	}
}

func baseJob() job.StructuredJob {
	return job.StructuredJob{
		Title:   "Backend Engineer",
		Company: "Acme",
		Requirements: job.Requirements{
			Skills: []string{"Go", "PostgreSQL", "Kubernetes"},
		},
	}
}

func TestExplainMatch_Bands(t *testing.T) {
	cases := []struct {
		composite float64
		want      string
	}{
		{0.90, "Excellent match (90%)"},
		{0.85, "Excellent match (85%)"},
		{0.75, "Strong match (75%)"},
		{0.60, "Good potential (60%)"},
		{0.30, "Partial match (30%)"},
	}

	analysis := AnalyzeGaps(baseCandidate().Skills, baseJob().Requirements.Skills, nil)
	for _, c := range cases {
		text := ExplainMatch(ranking.Breakdown{Composite: c.composite}, baseCandidate(), baseJob(), analysis)
		if !strings.Contains(text, c.want) {
			t.Fatalf("composite=%v: expected %q in explanation:\n%s", c.composite, c.want, text)
		}
	}
}

func TestExplainMatch_SkillSection(t *testing.T) {
	analysis := AnalyzeGaps(baseCandidate().Skills, baseJob().Requirements.Skills, nil)
	text := ExplainMatch(ranking.Breakdown{Composite: 0.8, Experience: 1.0}, baseCandidate(), baseJob(), analysis)

	if !strings.Contains(text, "**2/3** key skills") {
		t.Fatalf("expected skill count header, got:\n%s", text)
	}
	if !strings.Contains(text, "Go") || !strings.Contains(text, "PostgreSQL") {
		t.Fatalf("expected matched skills listed, got:\n%s", text)
	}
	// No critical skills: nice-to-have section appears instead.
	if !strings.Contains(text, "**Nice to have:**") || !strings.Contains(text, "Kubernetes") {
		t.Fatalf("expected nice-to-have section, got:\n%s", text)
	}
	if strings.Contains(text, "**Skills to prioritize:**") {
		t.Fatalf("unexpected critical section without critical skills:\n%s", text)
	}
}

func TestExplainMatch_CriticalSuppressesNiceToHave(t *testing.T) {
	reference := [][]string{{"Kubernetes"}, {"Kubernetes", "Helm"}}
	jobSkills := []string{"Go", "Kubernetes", "Zig"}
	analysis := AnalyzeGaps([]string{"Go"}, jobSkills, reference)

	j := baseJob()
	j.Requirements.Skills = jobSkills
	text := ExplainMatch(ranking.Breakdown{Composite: 0.6}, baseCandidate(), j, analysis)

	if !strings.Contains(text, "**Skills to prioritize:**") || !strings.Contains(text, "Kubernetes") {
		t.Fatalf("expected critical section, got:\n%s", text)
	}
	if strings.Contains(text, "**Nice to have:**") {
		t.Fatalf("nice-to-have must be hidden when critical skills exist:\n%s", text)
	}
}

func TestExplainMatch_MatchedSkillsCapped(t *testing.T) {
	jobSkills := []string{"Go", "PostgreSQL", "Redis", "Docker", "Kafka"}
	analysis := AnalyzeGaps(jobSkills, jobSkills, nil)

	j := baseJob()
	j.Requirements.Skills = jobSkills
	text := ExplainMatch(ranking.Breakdown{Composite: 0.9}, baseCandidate(), j, analysis)

	if got := strings.Count(text, "• ✅"); got != 3 {
		t.Fatalf("expected 3 listed matched skills, got %d:\n%s", got, text)
	}
}

func TestExplainMatch_ExperienceGap(t *testing.T) {
	cand := baseCandidate()
	cand.ExperienceYears = 2

	j := baseJob()
	j.Requirements.ExperienceMin = intPtr(6)

	analysis := AnalyzeGaps(cand.Skills, j.Requirements.Skills, nil)
	text := ExplainMatch(ranking.Breakdown{Composite: 0.5, Experience: 0.4}, cand, j, analysis)
	if !strings.Contains(text, "requires 4+ more years") {
		t.Fatalf("expected experience gap line, got:\n%s", text)
	}
}

func TestExplainMatch_SalaryLine(t *testing.T) {
	cand := baseCandidate()
	cand.SalaryExpected = intPtr(130000)

	j := baseJob()
	j.Requirements.SalaryMin = intPtr(110000)
	j.Requirements.SalaryMax = intPtr(150000)

	analysis := AnalyzeGaps(cand.Skills, j.Requirements.Skills, nil)
	text := ExplainMatch(ranking.Breakdown{Composite: 0.9, Salary: 1.0, Experience: 1.0}, cand, j, analysis)
	if !strings.Contains(text, "$110,000-$150,000") {
		t.Fatalf("expected formatted salary range, got:\n%s", text)
	}
}

func TestExplainMatch_Deterministic(t *testing.T) {
	analysis := AnalyzeGaps(baseCandidate().Skills, baseJob().Requirements.Skills, nil)
	scores := ranking.Breakdown{Composite: 0.72, Experience: 0.9}
	a := ExplainMatch(scores, baseCandidate(), baseJob(), analysis)
	b := ExplainMatch(scores, baseCandidate(), baseJob(), analysis)
	if a != b {
		t.Fatalf("explanation is not deterministic")
	}
}

func TestQuickSummary(t *testing.T) {
	analysis := SkillAnalysis{
		MatchedSkills: []string{"Go", "PostgreSQL"},
		MissingSkills: []string{"Kubernetes"},
	}

	cases := []struct {
		composite float64
		want      string
	}{
		{0.9, "🎯 Excellent fit! 2/3 skills match"},
		{0.75, "✨ Strong match with 2/3 skills"},
		{0.6, "👍 Good potential - 1 skills to develop"},
		{0.3, "📊 Partial match - consider for growth opportunity"},
	}
	for _, c := range cases {
		got := QuickSummary(ranking.Breakdown{Composite: c.composite}, analysis)
		if got != c.want {
			t.Fatalf("composite=%v: got %q, want %q", c.composite, got, c.want)
		}
	}
}

func TestFormatThousands(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		150000:  "150,000",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := formatThousands(in); got != want {
			t.Fatalf("formatThousands(%d) = %q, want %q", in, got, want)
		}
	}
}
