package aivalidate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/roster/internal/core/model"
)

type mockLLM struct {
	Response string
	Err      error
	Prompt   string
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func TestValidateBatch_ParsesWrappedJSON(t *testing.T) {
	// Models tend to wrap the JSON in prose; the client has to cope.
	mock := &mockLLM{
		Response: `Here is my analysis of the records:
{
	"results": {
		"rec-1": {
			"errors": [
				{"field": "dob", "message": "Future birth date", "severity": "error"}
			],
			"corrections": [
				{"field": "email", "suggestion": "jane@example.com", "confidence": 0.95}
			]
		}
	}
}
Let me know if you need anything else.`,
	}

	client := NewLLMBatchClient(mock)
	records := []model.Record{{RecordID: "rec-1", FirstName: "Jane"}}

	resp, err := client.ValidateBatch(context.Background(), records)
	require.NoError(t, err)

	findings, ok := resp.Results["rec-1"]
	require.True(t, ok)
	require.Len(t, findings.Errors, 1)
	assert.Equal(t, "dob", findings.Errors[0].Field)
	require.Len(t, findings.Corrections, 1)
	assert.Equal(t, 0.95, findings.Corrections[0].Confidence)

	// The prompt carries the records and the contract.
	assert.True(t, strings.Contains(mock.Prompt, `"recordId": "rec-1"`))
	assert.True(t, strings.Contains(mock.Prompt, "recordId as keys"))
}

func TestValidateBatch_TransportErrorPropagates(t *testing.T) {
	mock := &mockLLM{Err: fmt.Errorf("connection refused")}
	client := NewLLMBatchClient(mock)

	_, err := client.ValidateBatch(context.Background(), []model.Record{{RecordID: "rec-1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidateBatch_GarbageResponseIsError(t *testing.T) {
	mock := &mockLLM{Response: "I could not process these records."}
	client := NewLLMBatchClient(mock)

	_, err := client.ValidateBatch(context.Background(), []model.Record{{RecordID: "rec-1"}})
	require.Error(t, err)
}
