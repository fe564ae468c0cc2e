package aivalidate

import (
	"github.com/agenthands/roster/internal/core/model"
)

// Corrections below this confidence are dropped outright, not downgraded to
// warnings; a hesitant model suggestion is worse than none.
const minCorrectionConfidence = 0.9

// MergeFindings converts one record's raw remote findings into a canonical
// validation result. Raw errors are split by severity, qualifying
// corrections become AI-sourced AutoCorrections, and duplicate claims land
// as warnings carrying their match evidence.
func MergeFindings(findings model.RecordFindings) model.ValidationResult {
	var errors, warnings []model.Issue
	var corrections []model.AutoCorrection

	for _, raw := range findings.Errors {
		issue := model.Issue{
			Field:           raw.Field,
			Message:         raw.Message,
			Code:            model.CodeAIValidation,
			Severity:        model.Severity(raw.Severity),
			Explanation:     raw.Explanation,
			Impact:          raw.Impact,
			SuggestedAction: raw.SuggestedAction,
		}
		if issue.Severity == model.SeverityError {
			errors = append(errors, issue)
		} else {
			warnings = append(warnings, issue)
		}
	}

	for _, raw := range findings.Corrections {
		if raw.Confidence < minCorrectionConfidence || raw.Suggestion == "" {
			continue
		}
		corrections = append(corrections, model.AutoCorrection{
			Field:          raw.Field,
			OriginalValue:  raw.OriginalValue,
			CorrectedValue: raw.Suggestion,
			Confidence:     raw.Confidence,
			Source:         model.SourceAI,
			Explanation:    raw.Explanation,
			Reasoning:      raw.Reasoning,
		})
	}

	for _, raw := range findings.Duplicates {
		warnings = append(warnings, model.Issue{
			Field:         "duplicate",
			Message:       "Potential duplicate record detected",
			Code:          model.CodeDuplicate,
			Severity:      model.SeverityWarning,
			Explanation:   raw.Explanation,
			MatchedFields: raw.MatchedFields,
			Confidence:    raw.Confidence,
			Differences:   raw.Differences,
		})
	}

	return model.ValidationResult{
		IsValid:         len(errors) == 0,
		Errors:          errors,
		Warnings:        warnings,
		AutoCorrections: corrections,
	}
}

// DefaultUnavailableResult marks a record whose validation never came back:
// the transport call failed or the response had no entry for it. The record
// stays invalid with a generic system error until the next full run.
func DefaultUnavailableResult() model.ValidationResult {
	return model.ValidationResult{
		IsValid: false,
		Errors: []model.Issue{
			{
				Field:    "system",
				Message:  "Validation service unavailable",
				Code:     model.CodeSystemError,
				Severity: model.SeverityError,
			},
		},
		Warnings:        []model.Issue{},
		AutoCorrections: []model.AutoCorrection{},
	}
}
