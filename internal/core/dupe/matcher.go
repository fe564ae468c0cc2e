package dupe

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agenthands/roster/internal/core/model"
)

// Config carries the weighted field set and thresholds for fuzzy duplicate
// matching. Zero values are not usable; start from DefaultConfig.
type Config struct {
	// Weights maps comparable fields to their contribution. "address" is the
	// primary street address line.
	Weights map[string]float64

	// FuzzyThresholds maps a field's similarity kind to the minimum
	// similarity that counts as a match for that field.
	FuzzyThresholds map[string]float64

	// DefaultThreshold applies to kinds without an entry above.
	DefaultThreshold float64

	// MinConfidence gates whether a candidate pair is reported at all.
	MinConfidence float64
}

func DefaultConfig() Config {
	return Config{
		Weights: map[string]float64{
			"firstName":    0.3,
			"lastName":     0.3,
			"dob":          0.2,
			"email":        0.2,
			"primaryPhone": 0.15,
			"address":      0.15,
		},
		FuzzyThresholds: map[string]float64{
			"name":    0.8,
			"address": 0.75,
			"email":   0.9,
		},
		DefaultThreshold: 0.8,
		MinConfidence:    0.85,
	}
}

// compareOrder fixes iteration order over the weighted fields so matched-field
// lists come out deterministic.
var compareOrder = []string{"firstName", "lastName", "dob", "email", "primaryPhone", "address"}

// similarityKind groups fields that share a comparison strategy.
var similarityKind = map[string]string{
	"firstName":    "name",
	"lastName":     "name",
	"email":        "email",
	"primaryPhone": "phone",
	"address":      "address",
}

// FindDuplicates compares the target against every other record in the
// working set and returns candidates at or above MinConfidence, sorted by
// descending confidence. O(n) per call.
//
// Confidence is the similarity-weighted sum over matched fields divided by
// the summed weights of matched fields only, not the total field weight.
// A pair matching on a single field can therefore score 1.0. That is the
// shipped behavior and downstream thresholds are tuned to it, so it stays
// until product signs off on a renormalization.
func FindDuplicates(target model.Record, records []model.Record, cfg Config) []model.DuplicateMatch {
	var matches []model.DuplicateMatch

	for i := range records {
		other := &records[i]
		if other.RecordID == target.RecordID {
			continue
		}

		var matchedFields []string
		var differences []model.FieldDifference
		var weightedSimilarity, matchedWeight float64

		for _, field := range compareOrder {
			weight, ok := cfg.Weights[field]
			if !ok {
				continue
			}
			v1 := fieldValue(&target, field)
			v2 := fieldValue(other, field)

			kind := similarityKind[field]
			sim := Similarity(v1, v2, kind)
			if sim <= cfg.threshold(kind) {
				continue
			}

			matchedFields = append(matchedFields, field)
			weightedSimilarity += sim * weight
			matchedWeight += weight
			if v1 != v2 {
				differences = append(differences, model.FieldDifference{Field: field, Value1: v1, Value2: v2})
			}
		}

		if matchedWeight == 0 {
			continue
		}
		confidence := weightedSimilarity / matchedWeight
		if confidence >= cfg.MinConfidence {
			matches = append(matches, model.DuplicateMatch{
				RecordID:      other.RecordID,
				Confidence:    confidence,
				MatchedFields: matchedFields,
				Differences:   differences,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

func (c Config) threshold(kind string) float64 {
	if t, ok := c.FuzzyThresholds[kind]; ok {
		return t
	}
	return c.DefaultThreshold
}

func fieldValue(r *model.Record, field string) string {
	if field == "address" {
		return r.HomeAddress1
	}
	return r.FieldValue(field)
}

var (
	digitStripRe   = regexp.MustCompile(`\D`)
	addressTokenRe = regexp.MustCompile(`[\s,]+`)
)

// Similarity scores two raw values in [0,1] using the strategy for the given
// kind. Comparison is case-insensitive; either value being empty scores 0 and
// exact equality scores 1 regardless of kind.
func Similarity(value1, value2, kind string) float64 {
	if value1 == "" || value2 == "" {
		return 0
	}
	v1 := strings.ToLower(value1)
	v2 := strings.ToLower(value2)
	if v1 == v2 {
		return 1
	}

	switch kind {
	case "name":
		return nameSimilarity(v1, v2)

	case "email":
		// Different domains are different people as far as matching goes,
		// however close the local parts look.
		local1, domain1, ok1 := strings.Cut(v1, "@")
		local2, domain2, ok2 := strings.Cut(v2, "@")
		if !ok1 || !ok2 || domain1 != domain2 {
			return 0
		}
		return nameSimilarity(local1, local2)*0.8 + 0.2

	case "phone":
		if digitStripRe.ReplaceAllString(v1, "") == digitStripRe.ReplaceAllString(v2, "") {
			return 1
		}
		return 0

	case "address":
		tokens1 := addressTokenRe.Split(v1, -1)
		tokens2 := addressTokenRe.Split(v2, -1)
		matched := 0
		for _, t := range tokens1 {
			for _, u := range tokens2 {
				if t == u {
					matched++
					break
				}
			}
		}
		return float64(matched) / float64(max(len(tokens1), len(tokens2)))

	default:
		// Exact-or-nothing for unlisted kinds (dates and the like).
		return 0
	}
}

func nameSimilarity(v1, v2 string) float64 {
	distance := levenshtein(v1, v2)
	maxLen := max(len(v1), len(v2))
	return 1 - float64(distance)/float64(maxLen)
}
