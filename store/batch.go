package store

import (
	"context"
	"sync"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/floodrelief/relief-api/consts"
)

// BulkResult reports the outcome of a batched insert. FirstError holds the
// message of the first failure seen, if any.
type BulkResult struct {
	SuccessCount int    `json:"successCount"`
	ErrorCount   int    `json:"errorCount"`
	FirstError   string `json:"firstError"`
}

type insertFunc func(ctx context.Context, i int) error

// insertInBatches calls insert for every index in [0, n). Each batch of
// consts.BulkBatchSize runs concurrently and finishes before the next one
// starts. A failing record never stops the rest.
func insertInBatches(ctx context.Context, n int, insert insertFunc) BulkResult {
	var (
		result BulkResult
		mu     sync.Mutex
	)

	for start := 0; start < n; start += consts.BulkBatchSize {
		end := start + consts.BulkBatchSize
		if end > n {
			end = n
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				err := insert(ctx, i)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					log.WithFields(log.Fields{
						"prefix": mongoLogPrefix,
						"index":  i,
						"error":  err,
					}).Error("bulk insert record")
					sentry.CaptureException(err)

					result.ErrorCount++
					if result.FirstError == "" {
						result.FirstError = err.Error()
					}
					return
				}
				result.SuccessCount++
			}(i)
		}
		wg.Wait()

		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"from":   start,
			"to":     end,
		}).Debug("bulk insert batch done")
	}

	return result
}
