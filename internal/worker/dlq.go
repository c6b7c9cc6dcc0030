package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Jobs that exhausted their retries are parked per source queue under
// dlq:{queue}, kept for manual inspection and replay.

// DLQEntry wraps a dead job with its failure context.
type DLQEntry struct {
	Job      Job       `json:"job"`
	Queue    string    `json:"queue"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
}

func dlqKey(queue string) string { return "dlq:" + queue }

func sendToDLQ(ctx context.Context, rdb *redis.Client, queue string, job Job, cause error) {
	entry := DLQEntry{
		Job:      job,
		Queue:    queue,
		Error:    cause.Error(),
		FailedAt: time.Now().UTC(),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("cannot marshal DLQ entry")
		return
	}
	if err := rdb.LPush(ctx, dlqKey(queue), raw).Err(); err != nil {
		log.Error().Err(err).Str("job_id", job.ID).Msg("cannot push to DLQ")
	}
}

// DLQLength reports how many jobs are parked across all dead-letter queues.
func DLQLength(ctx context.Context, rdb *redis.Client) (int64, error) {
	var total int64
	for _, queue := range []string{QueueStockAlert, QueueReceipt} {
		n, err := rdb.LLen(ctx, dlqKey(queue)).Result()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
