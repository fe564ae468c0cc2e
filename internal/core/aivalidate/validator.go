package aivalidate

import (
	"context"
	"log"

	"github.com/agenthands/roster/internal/core/model"
)

// Validator drives the two-tier batch loop over the remote validator. Outer
// batches gate progress reporting; inner batches bound each transport
// request. Both tiers run strictly sequentially.
type Validator struct {
	Client         BatchClient
	OuterBatchSize int
	InnerBatchSize int
}

func NewValidator(client BatchClient, outerBatchSize, innerBatchSize int) *Validator {
	if outerBatchSize <= 0 {
		outerBatchSize = 20
	}
	if innerBatchSize <= 0 {
		innerBatchSize = 5
	}
	return &Validator{
		Client:         client,
		OuterBatchSize: outerBatchSize,
		InnerBatchSize: innerBatchSize,
	}
}

// Run validates every record and returns one result per record id. It never
// fails as a whole: a failed inner-batch call degrades every record in that
// inner batch to the default unavailable result and the loop moves on.
// progress, if non-nil, is called after each outer batch completes with a
// percentage that only ever grows.
func (v *Validator) Run(ctx context.Context, records []model.Record, progress func(pct int)) map[string]model.ValidationResult {
	results := make(map[string]model.ValidationResult, len(records))
	if len(records) == 0 {
		return results
	}

	processed := 0
	for outerStart := 0; outerStart < len(records); outerStart += v.OuterBatchSize {
		outer := records[outerStart:min(outerStart+v.OuterBatchSize, len(records))]

		for innerStart := 0; innerStart < len(outer); innerStart += v.InnerBatchSize {
			inner := outer[innerStart:min(innerStart+v.InnerBatchSize, len(outer))]

			response, err := v.Client.ValidateBatch(ctx, inner)
			if err != nil {
				log.Printf("Batch validation call failed for %d records: %v", len(inner), err)
				for _, r := range inner {
					results[r.RecordID] = DefaultUnavailableResult()
				}
				continue
			}

			for _, r := range inner {
				findings, ok := response.Results[r.RecordID]
				if !ok {
					log.Printf("No result for record %s in batch response", r.RecordID)
					results[r.RecordID] = DefaultUnavailableResult()
					continue
				}
				results[r.RecordID] = MergeFindings(findings)
			}
		}

		processed += len(outer)
		if progress != nil {
			progress(processed * 100 / len(records))
		}
	}

	return results
}
