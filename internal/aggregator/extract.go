package aggregator

import (
	"regexp"
	"strconv"
	"strings"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/ranking"
)

const maxExtractedSkills = 15

// skillVocabulary is scanned against title and description text. Multi-word
// terms come first so "machine learning" wins over a bare "go" inside it.
var skillVocabulary = []string{
	"machine learning", "deep learning", "natural language processing", "computer vision",
	"data science", "prompt engineering", "vector database", "ruby on rails",
	"react native", "node.js", "next.js", "vue.js", "spring boot", "apache spark",
	"apache kafka", "ci/cd", "rest api", "graphql", "elasticsearch", "postgresql",
	"mysql", "mongodb", "redis", "kubernetes", "docker", "terraform", "ansible",
	"aws", "azure", "gcp", "linux", "git", "python", "javascript", "typescript",
	"java", "golang", "rust", "kotlin", "swift", "scala", "php", "ruby", "c++",
	"c#", "sql", "nosql", "react", "angular", "vue", "django", "flask", "fastapi",
	"spring", "rails", "laravel", "pytorch", "tensorflow", "pandas", "numpy",
	"langchain", "llm", "rag", "grpc", "kafka", "rabbitmq", "airflow", "snowflake",
	"tableau", "devops", "microservices", "bash", "html", "css",
}

var (
	// "5+ years", "3-5 years", "at least 4 years"
	yearsRangeRe  = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:-|to|–)\s*(\d{1,2})\s*\+?\s*years?`)
	yearsSingleRe = regexp.MustCompile(`(?i)(?:at least\s+|minimum\s+(?:of\s+)?)?(\d{1,2})\s*\+?\s*years?`)

	// "$150k-180k", "$80,000 - $120,000", "150k - 180k USD"
	salaryRangeRe  = regexp.MustCompile(`(?i)\$?\s*(\d{1,3}(?:,\d{3})+|\d{2,3})\s*(k)?\s*(?:-|to|–)\s*\$?\s*(\d{1,3}(?:,\d{3})+|\d{2,3})\s*(k)?`)
	salarySingleRe = regexp.MustCompile(`(?i)\$\s*(\d{1,3}(?:,\d{3})+|\d{2,3})\s*(k)?`)

	remoteRe = regexp.MustCompile(`(?i)\b(remote|work from home|wfh|distributed team|anywhere)\b`)
)

var seniorityTitleHints = []struct {
	level    job.Seniority
	keywords []string
}{
	{job.SeniorityExecutive, []string{"cto", "vp ", "vice president", "chief", "head of", "director"}},
	{job.SeniorityLead, []string{"lead", "principal", "staff", "architect", "manager"}},
	{job.SenioritySenior, []string{"senior", "sr.", "sr "}},
	{job.SeniorityEntry, []string{"junior", "jr.", "jr ", "entry", "intern", "graduate", "trainee"}},
	{job.SeniorityMid, []string{"mid-level", "mid level", "intermediate"}},
}

// ExtractRequirements derives structured requirements from a raw posting.
// Source-provided hints (tags, salary text) take priority over free-text scans.
func ExtractRequirements(raw job.RawPosting) job.Requirements {
	text := strings.ToLower(raw.Title + " " + truncate(raw.Description, 3000))

	req := job.Requirements{
		Skills: extractSkills(raw.Tags, text),
		Remote: detectRemote(raw, text),
	}
	req.ExperienceMin, req.ExperienceMax = extractYears(text)
	if lvl, ok := extractSeniority(raw.Title); ok {
		req.Seniority = &lvl
	}
	req.SalaryMin, req.SalaryMax = extractSalary(raw.SalaryText)
	if req.SalaryMin == nil && req.SalaryMax == nil {
		req.SalaryMin, req.SalaryMax = extractSalary(text)
	}
	if raw.Location != nil {
		loc := strings.TrimSpace(*raw.Location)
		if loc != "" {
			req.Location = &loc
		}
	}
	return req
}

func extractSkills(tags []string, text string) []string {
	seen := map[string]struct{}{}
	skills := make([]string, 0, maxExtractedSkills)

	add := func(s string) bool {
		normalized := ranking.NormalizeSkill(s)
		if normalized == "" {
			return true
		}
		if _, ok := seen[normalized]; ok {
			return true
		}
		seen[normalized] = struct{}{}
		skills = append(skills, normalized)
		return len(skills) < maxExtractedSkills
	}

	for _, tag := range tags {
		if !add(tag) {
			return skills
		}
	}
	for _, term := range skillVocabulary {
		if !containsTerm(text, term) {
			continue
		}
		if !add(term) {
			return skills
		}
	}
	return skills
}

// containsTerm matches a vocabulary term on word boundaries so that "r" does
// not match inside "rust" and "go" does not match inside "google".
func containsTerm(text, term string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		idx = end
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordChar(text[i-1])
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	return !isWordChar(text[i])
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '+' || b == '#'
}

func extractYears(text string) (minYears, maxYears *int) {
	if m := yearsRangeRe.FindStringSubmatch(text); m != nil {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && lo <= hi {
			return &lo, &hi
		}
	}
	if m := yearsSingleRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n, nil
		}
	}
	return nil, nil
}

func extractSeniority(title string) (job.Seniority, bool) {
	t := strings.ToLower(title)
	for _, h := range seniorityTitleHints {
		for _, kw := range h.keywords {
			if strings.Contains(t, kw) {
				return h.level, true
			}
		}
	}
	return "", false
}

func detectRemote(raw job.RawPosting, text string) bool {
	if raw.Location != nil && remoteRe.MatchString(*raw.Location) {
		return true
	}
	return remoteRe.MatchString(text)
}

func extractSalary(text string) (salaryMin, salaryMax *int) {
	if text == "" {
		return nil, nil
	}
	if m := salaryRangeRe.FindStringSubmatch(text); m != nil {
		lo := parseSalaryNumber(m[1], m[2] != "")
		hi := parseSalaryNumber(m[3], m[4] != "" || m[2] != "")
		if lo > 0 && hi > 0 && lo <= hi {
			return &lo, &hi
		}
	}
	if m := salarySingleRe.FindStringSubmatch(text); m != nil {
		if n := parseSalaryNumber(m[1], m[2] != ""); n > 0 {
			return &n, nil
		}
	}
	return nil, nil
}

// parseSalaryNumber interprets "150" with a k suffix as 150000 and treats
// small bare numbers as thousands too; "$150-180k" means both bounds are in k.
func parseSalaryNumber(s string, thousands bool) int {
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	if thousands || n < 1000 {
		n *= 1000
	}
	if n < 10000 || n > 2000000 {
		return 0
	}
	return n
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
