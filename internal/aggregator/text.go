package aggregator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stripHTML flattens markup-heavy descriptions into plain text.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	).Replace(s)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// formatSalaryRange renders numeric salary bounds as a hint string that the
// extractor can parse alongside free-text salary mentions.
func formatSalaryRange(min, max int) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("$%d - $%d", min, max)
	case min > 0:
		return fmt.Sprintf("$%d+", min)
	case max > 0:
		return fmt.Sprintf("up to $%d", max)
	default:
		return ""
	}
}
