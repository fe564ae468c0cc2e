package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON unmarshals the first JSON object found in an LLM reply into T.
// Models wrap their JSON in prose or markdown fences more often than not, so
// everything outside the outermost braces is discarded before decoding.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	start := strings.IndexByte(response, '{')
	end := strings.LastIndexByte(response, '}')
	if start == -1 || end == -1 || end < start {
		return zero, fmt.Errorf("no JSON object found in response")
	}

	var result T
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}
