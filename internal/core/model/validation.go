package model

// Issue codes, in the order a record typically accumulates them.
const (
	CodeRequired     = "REQUIRED"
	CodeFormat       = "FORMAT"
	CodeBusinessRule = "BUSINESS_RULE"
	CodeAIValidation = "AI_VALIDATION"
	CodeDuplicate    = "DUPLICATE"
	CodeSystemError  = "SYSTEM_ERROR"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type CorrectionSource string

const (
	SourceRule CorrectionSource = "RULE"
	SourceAI   CorrectionSource = "AI"
)

// FieldDifference describes how one field diverges between two records that
// are suspected duplicates of each other.
type FieldDifference struct {
	Field        string `json:"field"`
	Value1       string `json:"value1"`
	Value2       string `json:"value2"`
	Significance string `json:"significance,omitempty"`
}

// Issue is a single validation finding on one field. Errors and warnings
// share the shape; severity and the containing list tell them apart.
type Issue struct {
	Field           string            `json:"field"`
	Message         string            `json:"message"`
	Code            string            `json:"code"`
	Severity        Severity          `json:"severity,omitempty"`
	Explanation     string            `json:"explanation,omitempty"`
	Impact          string            `json:"impact,omitempty"`
	SuggestedAction string            `json:"suggestedAction,omitempty"`
	SuggestedValue  string            `json:"suggestedValue,omitempty"`
	MatchedFields   []string          `json:"matchedFields,omitempty"`
	Confidence      float64           `json:"confidence,omitempty"`
	Differences     []FieldDifference `json:"differences,omitempty"`
}

// AutoCorrection is a proposed field replacement. Confidence is in [0,1];
// rule-synthesized corrections are always 1.
type AutoCorrection struct {
	Field          string           `json:"field"`
	OriginalValue  string           `json:"originalValue"`
	CorrectedValue string           `json:"correctedValue"`
	Confidence     float64          `json:"confidence"`
	Source         CorrectionSource `json:"source"`
	Explanation    string           `json:"explanation,omitempty"`
	Reasoning      string           `json:"reasoning,omitempty"`
}

// ValidationResult is the accumulated findings for one record at a point in
// time. IsValid tracks len(Errors) == 0 for every engine-produced result;
// the field-scoped clear override in the store is the one documented
// exception.
type ValidationResult struct {
	IsValid         bool             `json:"isValid"`
	Errors          []Issue          `json:"errors"`
	Warnings        []Issue          `json:"warnings"`
	AutoCorrections []AutoCorrection `json:"autoCorrections"`
}

// DuplicateMatch is a scored claim that the target record and the record
// identified by RecordID describe the same person.
type DuplicateMatch struct {
	RecordID      string            `json:"recordId"`
	Confidence    float64           `json:"confidence"`
	MatchedFields []string          `json:"matchedFields"`
	Differences   []FieldDifference `json:"differences,omitempty"`
}
