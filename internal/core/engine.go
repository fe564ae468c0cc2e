package core

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/agenthands/roster/internal/config"
	"github.com/agenthands/roster/internal/core/aivalidate"
	"github.com/agenthands/roster/internal/core/dupe"
	"github.com/agenthands/roster/internal/core/model"
	"github.com/agenthands/roster/internal/core/store"
	"github.com/agenthands/roster/internal/core/validate"
)

// Engine owns the record working set and its validation results and wires
// the rule validator, the AI batch validator and the duplicate matcher
// together. Mutations are single-writer by convention (they come off one
// request at a time); the store serializes its own access so reads stay safe
// during an AI run.
type Engine struct {
	Store     *store.ResultStore
	Validator *aivalidate.Validator

	records     []model.Record
	dupConfig   dupe.Config
	autoCorrect bool
}

func NewEngine(client aivalidate.BatchClient, cfg *config.Config) *Engine {
	dupConfig := dupe.DefaultConfig()
	if cfg.Duplicates.MinConfidence > 0 {
		dupConfig.MinConfidence = cfg.Duplicates.MinConfidence
	}

	return &Engine{
		Store:       store.NewResultStore(),
		Validator:   aivalidate.NewValidator(client, cfg.Validation.OuterBatchSize, cfg.Validation.InnerBatchSize),
		dupConfig:   dupConfig,
		autoCorrect: cfg.Validation.AutoCorrect,
	}
}

// LoadRecords replaces the working set. Records without an id get one;
// existing ids are kept so re-imports can line up with prior exports.
// Previous validation results are discarded.
func (e *Engine) LoadRecords(records []model.Record) []model.Record {
	for i := range records {
		if records[i].RecordID == "" {
			records[i].RecordID = uuid.New().String()
		}
	}
	e.records = records
	e.Store.ClearAll()
	return e.records
}

func (e *Engine) Records() []model.Record {
	return e.records
}

func (e *Engine) Record(recordID string) (*model.Record, bool) {
	for i := range e.records {
		if e.records[i].RecordID == recordID {
			return &e.records[i], true
		}
	}
	return nil, false
}

func (e *Engine) Result(recordID string) (model.ValidationResult, bool) {
	return e.Store.Get(recordID)
}

// ValidateAll re-runs rule validation over the full working set, replacing
// every stored result. With auto-correct on, rule corrections are applied to
// the records as well; the correction entries stay in the result history.
func (e *Engine) ValidateAll() {
	for i := range e.records {
		result := validate.ValidateRecord(e.records[i])
		e.Store.Set(e.records[i].RecordID, result)

		if e.autoCorrect {
			e.applyCorrections(&e.records[i], result.AutoCorrections)
		}
	}
}

// ValidateWithAI runs the remote validator over the working set and stores
// the merged results. The run always completes; degraded batches surface as
// SYSTEM_ERROR results, never as a returned error.
func (e *Engine) ValidateWithAI(ctx context.Context, progress func(pct int)) {
	results := e.Validator.Run(ctx, e.records, progress)
	for recordID, result := range results {
		e.Store.Set(recordID, result)

		if e.autoCorrect {
			if r, ok := e.Record(recordID); ok {
				e.applyCorrections(r, result.AutoCorrections)
			}
		}
	}
}

// DetectDuplicates runs the matcher once per record (O(n²) over the set) and
// folds the matches into each record's stored result as DUPLICATE warnings,
// replacing stale duplicate warnings but keeping all other findings.
func (e *Engine) DetectDuplicates() map[string][]model.DuplicateMatch {
	found := make(map[string][]model.DuplicateMatch)

	for i := range e.records {
		r := &e.records[i]
		matches := dupe.FindDuplicates(*r, e.records, e.dupConfig)
		if len(matches) > 0 {
			found[r.RecordID] = matches
		}

		result, ok := e.Store.Get(r.RecordID)
		if !ok {
			result = model.ValidationResult{IsValid: true}
		}

		kept := result.Warnings[:0:0]
		for _, w := range result.Warnings {
			if w.Code != model.CodeDuplicate {
				kept = append(kept, w)
			}
		}
		for _, m := range matches {
			kept = append(kept, model.Issue{
				Field:         "duplicate",
				Message:       fmt.Sprintf("Potential duplicate of record %s", m.RecordID),
				Code:          model.CodeDuplicate,
				Severity:      model.SeverityWarning,
				MatchedFields: m.MatchedFields,
				Confidence:    m.Confidence,
				Differences:   m.Differences,
			})
		}
		result.Warnings = kept
		e.Store.Set(r.RecordID, result)
	}

	return found
}

// UpdateRecord applies field edits and synchronously re-validates the record,
// replacing its stored result wholesale.
func (e *Engine) UpdateRecord(recordID string, updates map[string]string) error {
	r, ok := e.Record(recordID)
	if !ok {
		return fmt.Errorf("record not found: %s", recordID)
	}

	for field, value := range updates {
		if err := r.SetFieldValue(field, value); err != nil {
			return err
		}
	}

	e.Store.Set(recordID, validate.ValidateRecord(*r))
	return nil
}

// ApplyCorrection rewrites the record field with the stored correction's
// value and re-validates. The application itself does not remove the
// correction; the wholesale replace on re-validation is what refreshes the
// history.
func (e *Engine) ApplyCorrection(recordID, field string) (*model.AutoCorrection, error) {
	result, ok := e.Store.Get(recordID)
	if !ok {
		return nil, fmt.Errorf("no validation result for record: %s", recordID)
	}

	for _, c := range result.AutoCorrections {
		if c.Field != field {
			continue
		}
		if err := e.UpdateRecord(recordID, map[string]string{field: c.CorrectedValue}); err != nil {
			return nil, err
		}
		return &c, nil
	}
	return nil, fmt.Errorf("no correction for field %s on record %s", field, recordID)
}

// MarkFieldValid is the reviewer override: drop everything scoped to the
// field and flip the record valid, unrelated findings notwithstanding.
func (e *Engine) MarkFieldValid(recordID, field string) {
	e.Store.ClearField(recordID, field)
}

// Stats are the aggregate counts the grid header shows.
type Stats struct {
	TotalRecords int `json:"totalRecords"`
	store.Stats
}

func (e *Engine) Stats() Stats {
	return Stats{
		TotalRecords: len(e.records),
		Stats:        e.Store.Stats(),
	}
}

// Clear empties the working set and the result store.
func (e *Engine) Clear() {
	log.Printf("Clearing %d records", len(e.records))
	e.records = nil
	e.Store.ClearAll()
}

func (e *Engine) applyCorrections(r *model.Record, corrections []model.AutoCorrection) {
	for _, c := range corrections {
		if err := r.SetFieldValue(c.Field, c.CorrectedValue); err != nil {
			log.Printf("Failed to apply correction to %s.%s: %v", r.RecordID, c.Field, err)
		}
	}
}
