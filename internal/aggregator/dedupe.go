package aggregator

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"jobmatch/internal/domain/job"
)

var corporateSuffixes = []string{" inc.", " inc", " llc", " ltd", " corporation", " corp", " co.", " co"}

// Deduper collapses duplicate postings within and across sources. The key is
// a hash of normalized title, company, and location, so the same role listed
// on two boards counts once. State persists across batches until Reset.
type Deduper struct {
	seen map[string]struct{}
}

func NewDeduper() *Deduper {
	return &Deduper{seen: map[string]struct{}{}}
}

func (d *Deduper) Reset() {
	d.seen = map[string]struct{}{}
}

// Dedupe returns the unique postings in input order. When the same key shows
// up twice in one batch, the posting with the longer description wins.
func (d *Deduper) Dedupe(raws []job.RawPosting) []job.RawPosting {
	batch := map[string]int{}
	out := make([]job.RawPosting, 0, len(raws))

	for _, raw := range raws {
		h := jobHash(raw)
		if i, ok := batch[h]; ok {
			if len(raw.Description) > len(out[i].Description) {
				out[i] = raw
			}
			continue
		}
		if _, ok := d.seen[h]; ok {
			continue
		}
		d.seen[h] = struct{}{}
		batch[h] = len(out)
		out = append(out, raw)
	}
	return out
}

func jobHash(raw job.RawPosting) string {
	loc := ""
	if raw.Location != nil {
		loc = *raw.Location
	}
	key := normalizeDedupeText(raw.Title) + "|" + normalizeDedupeText(raw.Company) + "|" + normalizeDedupeText(loc)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func normalizeDedupeText(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = s[:len(s)-len(suffix)]
			break
		}
	}
	return s
}
