package aggregator

import (
	"testing"

	"jobmatch/internal/domain/job"
)

func intPtr(n int) *int { return &n }

func TestValidateRaw(t *testing.T) {
	valid := job.RawPosting{
		Source:      "remotive",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "A long enough description here.",
	}
	if res := ValidateRaw(valid); !res.Valid() {
		t.Fatalf("expected valid, got errors %v", res.Errors)
	}

	cases := []struct {
		name string
		mut  func(*job.RawPosting)
	}{
		{"missing title", func(r *job.RawPosting) { r.Title = "  " }},
		{"short title", func(r *job.RawPosting) { r.Title = "QA" }},
		{"missing company", func(r *job.RawPosting) { r.Company = "" }},
		{"missing source", func(r *job.RawPosting) { r.Source = "" }},
	}
	for _, c := range cases {
		r := valid
		c.mut(&r)
		if res := ValidateRaw(r); res.Valid() {
			t.Fatalf("%s: expected invalid", c.name)
		}
	}
}

func TestValidateRaw_PlaceholderCompanyIsWarning(t *testing.T) {
	r := job.RawPosting{Source: "x", Title: "Backend Engineer", Company: "N/A", Description: "long enough text"}
	res := ValidateRaw(r)
	if !res.Valid() {
		t.Fatalf("placeholder company should not reject, got %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a placeholder warning")
	}
}

func TestValidateStructured_RangeRules(t *testing.T) {
	base := job.StructuredJob{
		Source:      "x",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "A long enough description here.",
	}

	j := base
	j.Requirements.ExperienceMin = intPtr(5)
	j.Requirements.ExperienceMax = intPtr(2)
	if res := ValidateStructured(j); res.Valid() {
		t.Fatal("experience min > max should be rejected")
	}

	j = base
	j.Requirements.SalaryMin = intPtr(200000)
	j.Requirements.SalaryMax = intPtr(100000)
	if res := ValidateStructured(j); res.Valid() {
		t.Fatal("salary min > max should be rejected")
	}

	j = base
	j.Requirements.ExperienceMin = intPtr(2)
	j.Requirements.ExperienceMax = intPtr(5)
	j.Requirements.SalaryMin = intPtr(100000)
	j.Requirements.SalaryMax = intPtr(150000)
	if res := ValidateStructured(j); !res.Valid() {
		t.Fatalf("well-formed ranges rejected: %v", res.Errors)
	}
}

func TestValidateStructured_URLWarning(t *testing.T) {
	j := job.StructuredJob{
		Source:      "x",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "A long enough description here.",
		URL:         strPtr("ftp://example.com/job"),
	}
	res := ValidateStructured(j)
	if !res.Valid() {
		t.Fatalf("bad scheme should only warn, got %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a URL scheme warning")
	}
}

func TestIsTechJob(t *testing.T) {
	cases := []struct {
		title string
		want  bool
	}{
		{"Senior Software Engineer", true},
		{"DevOps Engineer", true},
		{"Machine Learning Engineer", true},
		{"Registered Nurse", false},
		{"Marketing Manager", false},
		{"Medical Software Engineer", false}, // exclusions win
		{"", false},
		{"Florist", false},
	}
	for _, c := range cases {
		if got := IsTechJob(c.title); got != c.want {
			t.Fatalf("IsTechJob(%q) = %v, want %v", c.title, got, c.want)
		}
	}
}
