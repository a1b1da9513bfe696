package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
)

// NewUploadSweeper returns a worker that removes temporary uploads older
// than maxAge every interval.
func NewUploadSweeper(sweeper store.UploadSweeper, interval, maxAge time.Duration) Worker {
	return NewPeriodic("upload-sweeper", interval, func(ctx context.Context) error {
		removed, err := sweeper.RemoveStaleUploads(ctx, maxAge)
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.FromContext(ctx).Info().Int("removed", removed).Msg("stale uploads removed")
		}
		return nil
	})
}
