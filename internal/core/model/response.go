package model

// Wire schema for the remote batch validator response. The shape is owned by
// the vendor prompt contract, so every field is optional and validated at the
// merge boundary rather than trusted at use sites. A record missing from
// Results is the "unavailable" variant and gets a default degraded result.

type AIValidationResponse struct {
	Results      map[string]RecordFindings `json:"results"`
	GlobalIssues *GlobalIssues             `json:"globalIssues,omitempty"`
}

type RecordFindings struct {
	Errors      []RawFinding    `json:"errors,omitempty"`
	Corrections []RawCorrection `json:"corrections,omitempty"`
	Duplicates  []RawDuplicate  `json:"duplicates,omitempty"`
}

type RawFinding struct {
	Field           string `json:"field"`
	Message         string `json:"message"`
	Severity        string `json:"severity"`
	Explanation     string `json:"explanation,omitempty"`
	Impact          string `json:"impact,omitempty"`
	SuggestedAction string `json:"suggestedAction,omitempty"`
}

type RawCorrection struct {
	Field         string  `json:"field"`
	Suggestion    string  `json:"suggestion"`
	Confidence    float64 `json:"confidence"`
	Explanation   string  `json:"explanation,omitempty"`
	Reasoning     string  `json:"reasoning,omitempty"`
	OriginalValue string  `json:"originalValue,omitempty"`
}

type RawDuplicate struct {
	MatchedFields []string          `json:"matchedFields"`
	Confidence    float64           `json:"confidence"`
	Explanation   string            `json:"explanation,omitempty"`
	Differences   []FieldDifference `json:"differences,omitempty"`
}

type GlobalIssues struct {
	Standardization []GlobalStandardizationIssue `json:"standardization,omitempty"`
	Duplicates      []GlobalDuplicateIssue       `json:"duplicates,omitempty"`
}

type GlobalStandardizationIssue struct {
	Field          string `json:"field"`
	Issue          string `json:"issue"`
	Explanation    string `json:"explanation,omitempty"`
	Impact         string `json:"impact,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

type GlobalDuplicateIssue struct {
	Records        []string `json:"records"`
	Confidence     float64  `json:"confidence"`
	Explanation    string   `json:"explanation,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}
