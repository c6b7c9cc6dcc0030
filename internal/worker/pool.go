package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis job queues. Producers LPUSH, workers BRPOP, so each queue is FIFO.
const (
	QueueStockAlert = "jobs:stock_alert"
	QueueReceipt    = "jobs:receipt"
)

const maxAttempts = 3

// Job is the envelope every queued payload travels in.
type Job struct {
	ID         string          `json:"id"`
	Queue      string          `json:"queue"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// StockAlertPayload describes an item that hit its reorder threshold.
type StockAlertPayload struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	MinStock int    `json:"min_stock"`
}

// ReceiptPayload asks for a receipt PDF for a completed booking.
// CustomerEmail is optional; when set the receipt is also emailed.
type ReceiptPayload struct {
	BookingID     string `json:"booking_id"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// Dispatcher enqueues jobs. It is safe for concurrent use.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

func (d *Dispatcher) EnqueueStockAlert(ctx context.Context, p StockAlertPayload) error {
	return d.enqueue(ctx, QueueStockAlert, p)
}

func (d *Dispatcher) EnqueueReceipt(ctx context.Context, p ReceiptPayload) error {
	return d.enqueue(ctx, QueueReceipt, p)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{
		ID:         uuid.NewString(),
		Queue:      queue,
		Payload:    raw,
		EnqueuedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	if err := d.rdb.LPush(ctx, queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("enqueue failed")
		return err
	}
	return nil
}

// Handlers binds each queue to its processing function.
type Handlers struct {
	StockAlert func(ctx context.Context, p StockAlertPayload) error
	Receipt    func(ctx context.Context, p ReceiptPayload) error
}

// StartWorkerPool launches size goroutines that drain both queues until ctx
// is cancelled. A job that keeps failing after maxAttempts goes to the DLQ.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, size int, handlers Handlers) {
	if size < 1 {
		size = 1
	}
	for i := 0; i < size; i++ {
		go workerLoop(ctx, rdb, i, handlers)
	}
	log.Info().Int("workers", size).Msg("worker pool started")
}

func workerLoop(ctx context.Context, rdb *redis.Client, id int, handlers Handlers) {
	queues := []string{QueueStockAlert, QueueReceipt}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			log.Error().Err(err).Int("worker", id).Msg("brpop failed")
			time.Sleep(time.Second)
			continue
		}
		// BRPop returns [queue, value].
		if len(res) != 2 {
			continue
		}
		queue, data := res[0], res[1]

		var job Job
		if err := json.Unmarshal([]byte(data), &job); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("malformed job dropped")
			continue
		}

		if err := process(ctx, queue, job, handlers); err != nil {
			job.Attempts++
			if job.Attempts >= maxAttempts {
				log.Error().Err(err).Str("job_id", job.ID).Str("queue", queue).
					Int("attempts", job.Attempts).Msg("job exhausted, sending to DLQ")
				sendToDLQ(ctx, rdb, queue, job, err)
				continue
			}
			log.Warn().Err(err).Str("job_id", job.ID).Int("attempt", job.Attempts).
				Msg("job failed, requeueing")
			if raw, mErr := json.Marshal(job); mErr == nil {
				_ = rdb.LPush(ctx, queue, raw).Err()
			}
		}
	}
}

func process(ctx context.Context, queue string, job Job, handlers Handlers) error {
	switch queue {
	case QueueStockAlert:
		if handlers.StockAlert == nil {
			return nil
		}
		var p StockAlertPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return err
		}
		return handlers.StockAlert(ctx, p)
	case QueueReceipt:
		if handlers.Receipt == nil {
			return nil
		}
		var p ReceiptPayload
		if err := json.Unmarshal(job.Payload, &p); err != nil {
			return err
		}
		return handlers.Receipt(ctx, p)
	default:
		return nil
	}
}
