package usecase

import (
	"context"
	"sort"
	"strings"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/ranking"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

const (
	minLikesForPatterns    = 3
	minLikesForSuggestions = 5
	remotePreferenceRatio  = 0.6
)

// UserPatterns is a behavioral profile derived from a candidate's liked jobs.
type UserPatterns struct {
	RemotePreference   bool    `json:"remote_preference"`
	MinPreferredSalary *int    `json:"min_preferred_salary,omitempty"`
	PreferredSeniority *string `json:"preferred_seniority,omitempty"`
	TopSkills          []string `json:"top_skills"`
	SampleSize         int     `json:"sample_size"`

	TechStackPreference   *string `json:"tech_stack_preference,omitempty"`
	RoleTypePreference    *string `json:"role_type_preference,omitempty"`
	CompanyTypePreference *string `json:"company_type_preference,omitempty"`
	GeographicPreference  *string `json:"geographic_preference,omitempty"`
}

type FeedbackSummary struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
	Total    int `json:"total"`
}

type AnalyticsUsecase interface {
	GetUserPatterns(ctx context.Context, candidateID uuid.UUID) (UserPatterns, error)
	SuggestWeights(ctx context.Context, candidateID uuid.UUID) (ranking.Weights, error)
	GetFeedbackSummary(ctx context.Context, candidateID uuid.UUID) (FeedbackSummary, error)
	GetPresetEffectiveness(ctx context.Context) (map[string]repository.PresetStats, error)
}

type Analytics struct {
	feedback repository.FeedbackRepository
	cache    RecommendationCache
}

func NewAnalyticsUsecase(fb repository.FeedbackRepository, cache RecommendationCache) *Analytics {
	return &Analytics{feedback: fb, cache: cache}
}

type keywordGroup struct {
	name     string
	keywords []string
}

var techStacks = []keywordGroup{
	{"python", []string{"python", "django", "flask", "fastapi", "pandas", "numpy"}},
	{"javascript", []string{"javascript", "react", "vue", "angular", "node", "typescript"}},
	{"go", []string{"go", "golang"}},
	{"java", []string{"java", "spring", "kotlin"}},
	{"rust", []string{"rust"}},
	{"ml", []string{"machine learning", "tensorflow", "pytorch", "scikit-learn", "ml", "ai"}},
}

var roleTypes = []keywordGroup{
	{"backend", []string{"api", "database", "sql", "rest", "microservices", "server"}},
	{"frontend", []string{"react", "vue", "angular", "css", "html", "ui", "ux"}},
	{"fullstack", []string{"fullstack", "full-stack", "full stack"}},
	{"data", []string{"data engineering", "etl", "spark", "airflow", "data pipeline"}},
	{"ml", []string{"machine learning", "deep learning", "nlp", "computer vision", "llm"}},
	{"devops", []string{"kubernetes", "docker", "ci/cd", "terraform", "aws", "devops"}},
}

var companyIndicators = []keywordGroup{
	{"startup", []string{"startup", "early-stage", "seed", "series a", "fast-paced", "wear many hats"}},
	{"enterprise", []string{"fortune 500", "enterprise", "large-scale", "global company", "established"}},
	{"mid-size", []string{"growing company", "mid-size", "scale-up"}},
}

var geoRegions = []keywordGroup{
	{"us", []string{"usa", "united states", "new york", "san francisco", "seattle", "austin", "boston", "los angeles", "chicago", "denver"}},
	{"europe", []string{"uk", "london", "berlin", "amsterdam", "paris", "europe", "germany", "france", "netherlands", "spain", "ireland"}},
	{"asia", []string{"singapore", "tokyo", "india", "bangalore", "asia", "hong kong", "shanghai", "seoul"}},
}

func (u *Analytics) GetUserPatterns(ctx context.Context, candidateID uuid.UUID) (UserPatterns, error) {
	if candidateID == uuid.Nil {
		return UserPatterns{}, ErrInvalidInput
	}

	if u.cache != nil {
		var cached UserPatterns
		if ok, err := u.cache.GetJSON(ctx, CandidatePatternsCacheKey(candidateID), &cached); err == nil && ok {
			return cached, nil
		}
	}

	likedJobs, err := u.feedback.ListLikedJobs(ctx, candidateID, 0)
	if err != nil {
		return UserPatterns{}, ErrInternal
	}
	if len(likedJobs) < minLikesForPatterns {
		return UserPatterns{}, ErrNotEnoughSignal
	}

	patterns := derivePatterns(likedJobs)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, CandidatePatternsCacheKey(candidateID), patterns, 0)
	}
	return patterns, nil
}

func derivePatterns(likedJobs []job.StructuredJob) UserPatterns {
	remoteCount := 0
	salaries := make([]int, 0, len(likedJobs))
	seniorityCounts := map[string]int{}
	seniorityOrderSeen := make([]string, 0, 5)
	allSkills := make([]string, 0)

	for _, j := range likedJobs {
		if j.Requirements.Remote {
			remoteCount++
		}
		if j.Requirements.SalaryMax != nil {
			salaries = append(salaries, *j.Requirements.SalaryMax)
		}
		if j.Requirements.Seniority != nil {
			s := string(*j.Requirements.Seniority)
			if _, seen := seniorityCounts[s]; !seen {
				seniorityOrderSeen = append(seniorityOrderSeen, s)
			}
			seniorityCounts[s]++
		}
		allSkills = append(allSkills, j.Requirements.Skills...)
	}

	patterns := UserPatterns{
		RemotePreference: float64(remoteCount)/float64(len(likedJobs)) > remotePreferenceRatio,
		TopSkills:        topSkills(allSkills, 5),
		SampleSize:       len(likedJobs),
	}

	if len(salaries) > 0 {
		total := 0
		for _, s := range salaries {
			total += s
		}
		v := int(float64(total) / float64(len(salaries)) * 0.9)
		patterns.MinPreferredSalary = &v
	}

	if best := modalValue(seniorityCounts, seniorityOrderSeen); best != "" {
		patterns.PreferredSeniority = &best
	}

	skillSet := map[string]struct{}{}
	for _, s := range allSkills {
		skillSet[strings.ToLower(s)] = struct{}{}
	}

	if stack := bestGroupMatch(techStacks, skillSet); stack != "" {
		patterns.TechStackPreference = &stack
	}

	titleWords := map[string]struct{}{}
	for _, j := range likedJobs {
		for _, w := range strings.Fields(strings.ToLower(j.Title)) {
			titleWords[w] = struct{}{}
		}
	}
	combined := map[string]struct{}{}
	for k := range skillSet {
		combined[k] = struct{}{}
	}
	for k := range titleWords {
		combined[k] = struct{}{}
	}
	if role := bestGroupMatch(roleTypes, combined); role != "" {
		patterns.RoleTypePreference = &role
	}

	if company := bestSubstringMatch(companyIndicators, likedJobs, func(j job.StructuredJob) string {
		return strings.ToLower(j.Description)
	}); company != "" {
		patterns.CompanyTypePreference = &company
	}

	if geo := geographicPreference(likedJobs); geo != "" {
		patterns.GeographicPreference = &geo
	}

	return patterns
}

// SuggestWeights derives a weight configuration from the candidate's liked
// jobs, starting from the balanced preset and nudging the factors behavior
// points at. Requires a larger sample than pattern derivation.
func (u *Analytics) SuggestWeights(ctx context.Context, candidateID uuid.UUID) (ranking.Weights, error) {
	patterns, err := u.GetUserPatterns(ctx, candidateID)
	if err != nil {
		return ranking.Weights{}, err
	}
	if patterns.SampleSize < minLikesForSuggestions {
		return ranking.Weights{}, ErrNotEnoughSignal
	}

	suggested, _ := ranking.Preset(ranking.DefaultPreset)

	if patterns.RemotePreference {
		suggested.Location = 0.30
		suggested.Skill = 0.25
	}
	if patterns.MinPreferredSalary != nil && *patterns.MinPreferredSalary > 150_000 {
		suggested.Salary = 0.25
		suggested.Skill = 0.25
	}
	if patterns.RoleTypePreference != nil && *patterns.RoleTypePreference == "ml" {
		suggested.Skill = 0.40
		suggested.Experience = 0.25
	}
	if patterns.CompanyTypePreference != nil && *patterns.CompanyTypePreference == "startup" {
		suggested.Experience = 0.15
		suggested.Skill = 0.35
	}

	return ranking.NormalizeWeights(suggested), nil
}

func (u *Analytics) GetFeedbackSummary(ctx context.Context, candidateID uuid.UUID) (FeedbackSummary, error) {
	if candidateID == uuid.Nil {
		return FeedbackSummary{}, ErrInvalidInput
	}
	likes, err := u.feedback.CountByCandidate(ctx, candidateID, "like")
	if err != nil {
		return FeedbackSummary{}, ErrInternal
	}
	dislikes, err := u.feedback.CountByCandidate(ctx, candidateID, "dislike")
	if err != nil {
		return FeedbackSummary{}, ErrInternal
	}
	return FeedbackSummary{Likes: likes, Dislikes: dislikes, Total: likes + dislikes}, nil
}

func (u *Analytics) GetPresetEffectiveness(ctx context.Context) (map[string]repository.PresetStats, error) {
	stats, err := u.feedback.PresetEffectiveness(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return stats, nil
}

func topSkills(skills []string, n int) []string {
	counts := map[string]int{}
	order := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

func modalValue(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, k := range order {
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	return best
}

func bestGroupMatch(groups []keywordGroup, values map[string]struct{}) string {
	best := ""
	bestScore := 0
	for _, g := range groups {
		score := 0
		for _, kw := range g.keywords {
			if _, ok := values[kw]; ok {
				score++
			}
		}
		if score > bestScore {
			best = g.name
			bestScore = score
		}
	}
	return best
}

func bestSubstringMatch(groups []keywordGroup, jobs []job.StructuredJob, text func(job.StructuredJob) string) string {
	scores := map[string]int{}
	for _, j := range jobs {
		body := text(j)
		for _, g := range groups {
			for _, kw := range g.keywords {
				if strings.Contains(body, kw) {
					scores[g.name]++
				}
			}
		}
	}
	best := ""
	bestScore := 0
	for _, g := range groups {
		if scores[g.name] > bestScore {
			best = g.name
			bestScore = scores[g.name]
		}
	}
	return best
}

func geographicPreference(jobs []job.StructuredJob) string {
	scores := map[string]int{}
	for _, j := range jobs {
		if j.Requirements.Remote {
			scores["remote-global"]++
		}
		location := ""
		if j.Requirements.Location != nil {
			location = strings.ToLower(*j.Requirements.Location)
		}
		for _, g := range geoRegions {
			for _, kw := range g.keywords {
				if strings.Contains(location, kw) {
					scores[g.name]++
					break
				}
			}
		}
	}

	order := []string{"us", "europe", "asia", "remote-global"}
	best := ""
	bestScore := 0
	for _, name := range order {
		if scores[name] > bestScore {
			best = name
			bestScore = scores[name]
		}
	}
	return best
}
