package recommendation

import (
	"fmt"
	"strconv"
	"strings"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/ranking"
)

// ExplainMatch renders a deterministic multi-line explanation of the match.
// Same inputs always produce the same text.
func ExplainMatch(scores ranking.Breakdown, cand candidate.Profile, j job.StructuredJob, analysis SkillAnalysis) string {
	lines := make([]string, 0, 12)
	req := j.Requirements
	matchPct := int(scores.Composite * 100)

	switch {
	case matchPct >= 85:
		lines = append(lines, fmt.Sprintf("🎯 **Excellent match (%d%%)!**", matchPct))
	case matchPct >= 70:
		lines = append(lines, fmt.Sprintf("✨ **Strong match (%d%%)**", matchPct))
	case matchPct >= 55:
		lines = append(lines, fmt.Sprintf("👍 **Good potential (%d%%)**", matchPct))
	default:
		lines = append(lines, fmt.Sprintf("📊 **Partial match (%d%%)**", matchPct))
	}

	totalRequired := len(analysis.MatchedSkills) + len(analysis.MissingSkills)
	if totalRequired > 0 {
		lines = append(lines, "", fmt.Sprintf("You have **%d/%d** key skills:", len(analysis.MatchedSkills), totalRequired))
		for _, skill := range capList(analysis.MatchedSkills, 3) {
			lines = append(lines, "  • ✅ "+skill)
		}

		if len(analysis.CriticalMissingSkills) > 0 {
			lines = append(lines, "", "**Skills to prioritize:**")
			for _, skill := range capList(analysis.CriticalMissingSkills, 2) {
				lines = append(lines, "  • ⚠️ "+skill+" *(high demand in similar roles)*")
			}
		} else if len(analysis.NiceToHaveSkills) > 0 {
			lines = append(lines, "", "**Nice to have:**")
			for _, skill := range capList(analysis.NiceToHaveSkills, 2) {
				lines = append(lines, "  • 📚 "+skill)
			}
		}
	}

	lines = append(lines, "")
	expMin := 0
	if req.ExperienceMin != nil {
		expMin = *req.ExperienceMin
	}
	switch {
	case scores.Experience >= 0.9:
		lines = append(lines, fmt.Sprintf("✅ Your %d years of experience is ideal for this role.", cand.ExperienceYears))
	case scores.Experience >= 0.7:
		lines = append(lines, fmt.Sprintf("👍 Your %d years experience is a reasonable fit.", cand.ExperienceYears))
	case cand.ExperienceYears < expMin:
		lines = append(lines, fmt.Sprintf("⚠️ This role typically requires %d+ more years of experience.", expMin-cand.ExperienceYears))
	default:
		lines = append(lines, "👍 Your experience level is compatible with this role.")
	}

	if scores.Location >= 0.9 {
		if req.Remote && cand.RemotePreferred {
			lines = append(lines, "✅ Remote position - matches your preference!")
		} else if !req.Remote && req.Location != nil && *req.Location != "" {
			lines = append(lines, fmt.Sprintf("✅ Location (%s) matches your preference.", *req.Location))
		}
	} else if req.Remote {
		lines = append(lines, "🌍 Remote work available for this role.")
	}

	if req.SalaryMax != nil {
		salaryMin := 0
		if req.SalaryMin != nil {
			salaryMin = *req.SalaryMin
		}
		if scores.Salary >= 0.9 {
			lines = append(lines, fmt.Sprintf("💰 Salary range ($%s-$%s) aligns with your expectations.",
				formatThousands(salaryMin), formatThousands(*req.SalaryMax)))
		} else if scores.Salary < 0.5 && cand.SalaryExpected != nil {
			lines = append(lines, fmt.Sprintf("💡 Salary ($%s) may be below your target.", formatThousands(*req.SalaryMax)))
		}
	}

	return strings.Join(lines, "\n")
}

// QuickSummary is the one-line variant used in list views.
func QuickSummary(scores ranking.Breakdown, analysis SkillAnalysis) string {
	matchPct := int(scores.Composite * 100)
	matched := len(analysis.MatchedSkills)
	total := matched + len(analysis.MissingSkills)

	switch {
	case matchPct >= 85:
		return fmt.Sprintf("🎯 Excellent fit! %d/%d skills match", matched, total)
	case matchPct >= 70:
		return fmt.Sprintf("✨ Strong match with %d/%d skills", matched, total)
	case matchPct >= 55:
		return fmt.Sprintf("👍 Good potential - %d skills to develop", total-matched)
	default:
		return "📊 Partial match - consider for growth opportunity"
	}
}

func capList(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func formatThousands(v int) string {
	s := strconv.Itoa(v)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
