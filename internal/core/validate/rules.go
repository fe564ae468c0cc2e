package validate

import (
	"math"
	"strconv"

	"github.com/agenthands/roster/internal/core/model"
)

const (
	minFullTimeHours  = 30
	wageToleranceUSD  = 1000
	payPeriodsPerYear = 52
)

// ValidateRecord runs every deterministic check against one record and
// returns a fresh result. It is pure: the record is not modified, synthesized
// corrections are recommendations only.
func ValidateRecord(r model.Record) model.ValidationResult {
	var errors, warnings []model.Issue
	var corrections []model.AutoCorrection

	// Required fields.
	if r.FirstName == "" {
		errors = append(errors, model.Issue{Field: "firstName", Message: "First name is required", Code: model.CodeRequired})
	} else if msg := Name(r.FirstName); msg != "" {
		errors = append(errors, model.Issue{Field: "firstName", Message: msg, Code: model.CodeFormat})
	}
	if r.LastName == "" {
		errors = append(errors, model.Issue{Field: "lastName", Message: "Last name is required", Code: model.CodeRequired})
	} else if msg := Name(r.LastName); msg != "" {
		errors = append(errors, model.Issue{Field: "lastName", Message: msg, Code: model.CodeFormat})
	}

	// Field formats.
	if msg := Email(r.Email); msg != "" {
		errors = append(errors, model.Issue{Field: "email", Message: msg, Code: model.CodeFormat})
	}
	if msg := Phone(r.PrimaryPhone); msg != "" {
		errors = append(errors, model.Issue{Field: "primaryPhone", Message: msg, Code: model.CodeFormat})

		// The one violation with an unambiguous fix: reformat and recommend
		// it iff the reformatted value would itself pass. The error stays
		// until the correction is actually applied.
		formatted := FormatPhone(r.PrimaryPhone)
		if formatted != r.PrimaryPhone && Phone(formatted) == "" {
			corrections = append(corrections, model.AutoCorrection{
				Field:          "primaryPhone",
				OriginalValue:  r.PrimaryPhone,
				CorrectedValue: formatted,
				Confidence:     1,
				Source:         model.SourceRule,
			})
		}
	}
	if msg := ZipCode(r.ZipCode); msg != "" {
		errors = append(errors, model.Issue{Field: "zipCode", Message: msg, Code: model.CodeFormat})
	}
	if msg := Date(r.DOB); msg != "" {
		errors = append(errors, model.Issue{Field: "dob", Message: msg, Code: model.CodeFormat})
	}
	if msg := Date(r.EmploymentStartDate); msg != "" {
		errors = append(errors, model.Issue{Field: "employmentStartDate", Message: msg, Code: model.CodeFormat})
	}

	// Business rules are warnings, never blocking.
	if r.FTPTStatus == model.StatusFullTime && r.AvgHoursPerWeek < minFullTimeHours {
		warnings = append(warnings, model.Issue{
			Field:    "avgHoursPerWeek",
			Message:  "Full-time employees should work at least 30 hours per week",
			Code:     model.CodeBusinessRule,
			Severity: model.SeverityWarning,
		})
	}

	expected := r.HourlyRate * r.AvgHoursPerWeek * payPeriodsPerYear
	if math.Abs(expected-r.AnnualWages) > wageToleranceUSD {
		warnings = append(warnings, model.Issue{
			Field:          "annualWages",
			Message:        "Annual wages may be incorrect based on hourly rate and hours",
			Code:           model.CodeBusinessRule,
			Severity:       model.SeverityWarning,
			SuggestedValue: strconv.FormatFloat(expected, 'f', -1, 64),
		})
	}

	return model.ValidationResult{
		IsValid:         len(errors) == 0,
		Errors:          errors,
		Warnings:        warnings,
		AutoCorrections: corrections,
	}
}
