// Package workers runs background jobs of the ledger server under one
// context.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails.
type Worker interface {
	Run(ctx context.Context) error
}
