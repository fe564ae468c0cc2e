package aivalidate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agenthands/roster/internal/core/common"
	"github.com/agenthands/roster/internal/core/model"
	"github.com/agenthands/roster/internal/llm"
)

// BatchClient is the transport boundary to the remote validator. The engine
// treats it as a black box: one inner batch of records in, one raw response
// out. Implementations must not retry; failure isolation happens above.
type BatchClient interface {
	ValidateBatch(ctx context.Context, records []model.Record) (*model.AIValidationResponse, error)
}

// LLMBatchClient asks a model provider to review a batch of records and
// answer in the response schema.
type LLMBatchClient struct {
	LLM llm.Client
}

func NewLLMBatchClient(client llm.Client) *LLMBatchClient {
	return &LLMBatchClient{LLM: client}
}

func (c *LLMBatchClient) ValidateBatch(ctx context.Context, records []model.Record) (*model.AIValidationResponse, error) {
	prompt, err := buildPrompt(records)
	if err != nil {
		return nil, err
	}

	response, err := c.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate validation response: %w", err)
	}

	result, err := common.ParseJSON[model.AIValidationResponse](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse validation response: %w", err)
	}
	return &result, nil
}

func buildPrompt(records []model.Record) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize records: %w", err)
	}

	return fmt.Sprintf(`Analyze and validate the following employee records. Provide detailed explanations for any issues found and suggested corrections:

%s

Provide response in JSON format with recordId as keys:
{
    "results": {
        "record_id_1": {
            "corrections": [
                {
                    "field": "fieldName",
                    "suggestion": "correctedValue",
                    "confidence": 0.95,
                    "explanation": "Brief explanation of what was corrected",
                    "reasoning": "Detailed reasoning behind the correction",
                    "originalValue": "original value"
                }
            ],
            "errors": [
                {
                    "field": "fieldName",
                    "message": "Brief error description",
                    "severity": "error|warning",
                    "explanation": "Detailed explanation of the issue",
                    "impact": "Business impact of this issue",
                    "suggestedAction": "Recommended action to resolve"
                }
            ],
            "duplicates": [
                {
                    "matchedFields": ["field1", "field2"],
                    "confidence": 0.92,
                    "explanation": "Why these records are likely duplicates",
                    "differences": [
                        {
                            "field": "fieldName",
                            "value1": "value in record 1",
                            "value2": "value in record 2",
                            "significance": "Importance of this difference"
                        }
                    ]
                }
            ]
        }
    }
}`, data), nil
}
