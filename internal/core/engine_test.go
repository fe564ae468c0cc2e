package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/roster/internal/config"
	"github.com/agenthands/roster/internal/core/model"
)

// stubBatchClient returns healthy empty findings for every record, or fails
// the calls listed in failCalls.
type stubBatchClient struct {
	calls     int
	failCalls map[int]bool
}

func (s *stubBatchClient) ValidateBatch(ctx context.Context, records []model.Record) (*model.AIValidationResponse, error) {
	call := s.calls
	s.calls++
	if s.failCalls[call] {
		return nil, fmt.Errorf("transport error")
	}
	resp := &model.AIValidationResponse{Results: make(map[string]model.RecordFindings)}
	for _, r := range records {
		resp.Results[r.RecordID] = model.RecordFindings{}
	}
	return resp, nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(&stubBatchClient{}, config.Default())
}

func validRecord(id, first, last string) model.Record {
	return model.Record{
		RecordID:            id,
		FirstName:           first,
		LastName:            last,
		DOB:                 "04/12/1985",
		Email:               fmt.Sprintf("%s.%s@example.com", first, last),
		PrimaryPhone:        "(555) 123-4567",
		ZipCode:             "98101",
		FTPTStatus:          model.StatusFullTime,
		AvgHoursPerWeek:     40,
		HourlyRate:          25,
		AnnualWages:         52000,
		EmploymentStartDate: "01/15/2020",
	}
}

func TestLoadRecords_AssignsIDs(t *testing.T) {
	e := newTestEngine(t)

	records := e.LoadRecords([]model.Record{
		validRecord("", "Jane", "Doe"),
		validRecord("keep-me", "Bob", "Smith"),
	})

	assert.NotEmpty(t, records[0].RecordID)
	assert.Equal(t, "keep-me", records[1].RecordID)
}

func TestLoadRecords_ClearsPreviousResults(t *testing.T) {
	e := newTestEngine(t)
	e.LoadRecords([]model.Record{validRecord("old", "Jane", "Doe")})
	e.ValidateAll()
	require.Equal(t, 1, e.Store.Len())

	e.LoadRecords([]model.Record{validRecord("new", "Bob", "Smith")})
	assert.Equal(t, 0, e.Store.Len())
}

func TestValidateAll_StoresResultPerRecord(t *testing.T) {
	e := newTestEngine(t)
	bad := validRecord("bad", "Jane", "Doe")
	bad.Email = "nope"
	e.LoadRecords([]model.Record{validRecord("good", "Bob", "Smith"), bad})

	e.ValidateAll()

	good, ok := e.Result("good")
	require.True(t, ok)
	assert.True(t, good.IsValid)

	result, ok := e.Result("bad")
	require.True(t, ok)
	assert.False(t, result.IsValid)
	assert.Equal(t, len(result.Errors) == 0, result.IsValid)
}

func TestValidateAll_AutoCorrectRewritesRecord(t *testing.T) {
	cfg := config.Default()
	cfg.Validation.AutoCorrect = true
	e := NewEngine(&stubBatchClient{}, cfg)

	r := validRecord("rec-1", "Jane", "Doe")
	r.PrimaryPhone = "1234567890"
	e.LoadRecords([]model.Record{r})

	e.ValidateAll()

	updated, ok := e.Record("rec-1")
	require.True(t, ok)
	assert.Equal(t, "(123) 456-7890", updated.PrimaryPhone)

	// The correction stays in the stored result until the next validation.
	result, _ := e.Result("rec-1")
	require.Len(t, result.AutoCorrections, 1)
}

func TestUpdateRecord_Revalidates(t *testing.T) {
	e := newTestEngine(t)
	r := validRecord("rec-1", "Jane", "Doe")
	r.Email = "broken"
	e.LoadRecords([]model.Record{r})
	e.ValidateAll()

	result, _ := e.Result("rec-1")
	require.False(t, result.IsValid)

	err := e.UpdateRecord("rec-1", map[string]string{"email": "jane@example.com"})
	require.NoError(t, err)

	result, _ = e.Result("rec-1")
	assert.True(t, result.IsValid)

	assert.Error(t, e.UpdateRecord("missing", map[string]string{"email": "x@y.z"}))
}

func TestApplyCorrection(t *testing.T) {
	e := newTestEngine(t)
	r := validRecord("rec-1", "Jane", "Doe")
	r.PrimaryPhone = "1234567890"
	e.LoadRecords([]model.Record{r})
	e.ValidateAll()

	applied, err := e.ApplyCorrection("rec-1", "primaryPhone")
	require.NoError(t, err)
	assert.Equal(t, "(123) 456-7890", applied.CorrectedValue)

	updated, _ := e.Record("rec-1")
	assert.Equal(t, "(123) 456-7890", updated.PrimaryPhone)

	// Re-validation after the fix leaves the record clean.
	result, _ := e.Result("rec-1")
	assert.True(t, result.IsValid)

	_, err = e.ApplyCorrection("rec-1", "email")
	assert.Error(t, err, "no correction exists for that field")
}

func TestValidateWithAI_FailedBatchDegradesOnlyItsRecords(t *testing.T) {
	cfg := config.Default()
	cfg.Validation.InnerBatchSize = 2
	e := NewEngine(&stubBatchClient{failCalls: map[int]bool{1: true}}, cfg)

	var records []model.Record
	for i := 0; i < 6; i++ {
		records = append(records, validRecord(fmt.Sprintf("rec-%d", i), "Jane", "Doe"))
	}
	e.LoadRecords(records)

	e.ValidateWithAI(context.Background(), nil)

	for i := 0; i < 6; i++ {
		result, ok := e.Result(fmt.Sprintf("rec-%d", i))
		require.True(t, ok)
		if i == 2 || i == 3 {
			assert.False(t, result.IsValid)
			assert.Equal(t, model.CodeSystemError, result.Errors[0].Code)
		} else {
			assert.True(t, result.IsValid)
		}
	}
}

func TestDetectDuplicates_MergesIntoStoredResults(t *testing.T) {
	e := newTestEngine(t)
	a := validRecord("a", "Jane", "Doe")
	b := validRecord("b", "Jane", "Doe")
	b.Email = a.Email // same address entirely
	c := validRecord("c", "Zelda", "Unique")
	c.DOB = "09/03/1972"
	c.Email = "zelda@elsewhere.org"
	c.PrimaryPhone = "(555) 999-0000"
	e.LoadRecords([]model.Record{a, b, c})
	e.ValidateAll()

	found := e.DetectDuplicates()

	assert.Len(t, found, 2)
	assert.Len(t, found["a"], 1)
	assert.Equal(t, "b", found["a"][0].RecordID)
	assert.NotContains(t, found, "c")

	result, _ := e.Result("a")
	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, model.CodeDuplicate, w.Code)
	assert.Equal(t, 1.0, w.Confidence)

	// Running again replaces duplicate warnings instead of stacking them.
	e.DetectDuplicates()
	result, _ = e.Result("a")
	assert.Len(t, result.Warnings, 1)
}

func TestDetectDuplicates_KeepsRuleFindings(t *testing.T) {
	e := newTestEngine(t)
	a := validRecord("a", "Jane", "Doe")
	a.Email = "broken"
	b := validRecord("b", "Jane", "Doe")
	b.Email = "broken"
	e.LoadRecords([]model.Record{a, b})
	e.ValidateAll()

	e.DetectDuplicates()

	result, _ := e.Result("a")
	assert.False(t, result.IsValid, "rule errors survive the duplicate merge")
	assert.NotEmpty(t, result.Errors)
	assert.NotEmpty(t, result.Warnings)
}

func TestMarkFieldValid(t *testing.T) {
	e := newTestEngine(t)
	r := validRecord("rec-1", "Jane", "")
	r.Email = "broken"
	e.LoadRecords([]model.Record{r})
	e.ValidateAll()

	e.MarkFieldValid("rec-1", "email")

	result, _ := e.Result("rec-1")
	assert.True(t, result.IsValid, "override ignores the outstanding lastName error")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "lastName", result.Errors[0].Field)
	assert.Equal(t, model.CodeRequired, result.Errors[0].Code)
}

func TestStatsAndClear(t *testing.T) {
	e := newTestEngine(t)
	bad := validRecord("bad", "Jane", "Doe")
	bad.Email = "nope"
	e.LoadRecords([]model.Record{validRecord("good", "Bob", "Smith"), bad})
	e.ValidateAll()

	stats := e.Stats()
	assert.Equal(t, 2, stats.TotalRecords)
	assert.Equal(t, 1, stats.Valid)
	assert.Equal(t, 1, stats.Invalid)

	e.Clear()
	assert.Empty(t, e.Records())
	assert.Equal(t, 0, e.Store.Len())
}
