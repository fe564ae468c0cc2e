package store

import (
	"sync"

	"github.com/agenthands/roster/internal/core/model"
)

// ResultStore holds the current validation result per record id. Results are
// replaced wholesale on re-validation; the only in-place mutation is the
// field-scoped clear. The mutex exists because HTTP reads can overlap an
// in-flight validation run's writes; there is no transactional merge, last
// write wins.
type ResultStore struct {
	mu      sync.RWMutex
	results map[string]model.ValidationResult
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		results: make(map[string]model.ValidationResult),
	}
}

// Set replaces the whole result for a record.
func (s *ResultStore) Set(recordID string, result model.ValidationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[recordID] = result
}

func (s *ResultStore) Get(recordID string) (model.ValidationResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[recordID]
	return result, ok
}

// ClearField drops every error, warning and correction scoped to the field,
// then marks the result valid regardless of what remains on other fields.
// That override is the "mark valid" UX contract: the reviewer has looked at
// the field and dismissed it, and dismissal flips the whole record. Do not
// recompute IsValid here.
func (s *ResultStore) ClearField(recordID, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[recordID]
	if !ok {
		return
	}

	result.Errors = filterIssues(result.Errors, field)
	result.Warnings = filterIssues(result.Warnings, field)

	corrections := result.AutoCorrections[:0:0]
	for _, c := range result.AutoCorrections {
		if c.Field != field {
			corrections = append(corrections, c)
		}
	}
	result.AutoCorrections = corrections
	result.IsValid = true

	s.results[recordID] = result
}

func (s *ResultStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[string]model.ValidationResult)
}

func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Stats are aggregate counts over the results currently held. A record that
// has not been validated yet simply is not counted; the store does not
// distinguish "not yet validated" from "validation failed".
type Stats struct {
	Valid         int `json:"validRecords"`
	Invalid       int `json:"invalidRecords"`
	Duplicates    int `json:"duplicates"`
	Autocorrected int `json:"autocorrected"`
}

func (s *ResultStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats Stats
	for _, r := range s.results {
		if r.IsValid {
			stats.Valid++
		} else {
			stats.Invalid++
		}
		for _, w := range r.Warnings {
			if w.Code == model.CodeDuplicate || len(w.MatchedFields) > 0 {
				stats.Duplicates++
				break
			}
		}
		if len(r.AutoCorrections) > 0 {
			stats.Autocorrected++
		}
	}
	return stats
}

func filterIssues(issues []model.Issue, field string) []model.Issue {
	kept := issues[:0:0]
	for _, issue := range issues {
		if issue.Field != field {
			kept = append(kept, issue)
		}
	}
	return kept
}
