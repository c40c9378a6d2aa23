package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleFeedbackNotifyTask delivers the notification for one committed
// feedback record.
//
// It only errors on an unreadable payload. Delivery failures are
// absorbed by the dispatcher, and returning nil keeps asynq from
// scheduling a retry either way.
func (j *JobService) handleFeedbackNotifyTask(ctx context.Context, t *asynq.Task) error {
	var p FeedbackNotifyPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal feedback notify payload: %w", err)
	}

	j.logger.Info().
		Int64("feedback_id", p.ID).
		Str("type", p.Type).
		Msg("processing feedback notify task")

	j.dispatcher.Dispatch(ctx, p.Feedback())

	return nil
}
