package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/phamqv/image-bundler/internal/models"
)

func (q *QueueService) StartWorker(ctx context.Context, workerID int) error {
	msgs, err := q.channel.Consume(
		q.queueName,                        // queue
		fmt.Sprintf("worker-%d", workerID), // consumer
		false,                              // auto-ack
		false,                              // exclusive
		false,                              // no-local
		false,                              // no-wait
		nil,                                // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	q.logger.Info("Worker started", zap.Int("worker_id", workerID))

	go func() {
		for {
			select {
			case <-ctx.Done():
				q.logger.Info("Worker stopping", zap.Int("worker_id", workerID))
				return
			case msg, ok := <-msgs:
				if !ok {
					q.logger.Warn("Message channel closed", zap.Int("worker_id", workerID))
					return
				}

				q.processMessage(ctx, msg, workerID)
			}
		}
	}()

	return nil
}

func (q *QueueService) processMessage(ctx context.Context, msg amqp.Delivery, workerID int) {
	var job models.BatchJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		q.logger.Error("Failed to unmarshal job",
			zap.Error(err),
			zap.Int("worker_id", workerID))
		msg.Nack(false, false) // Don't requeue malformed messages
		return
	}

	q.logger.Info("Processing job",
		zap.String("job_id", job.ID),
		zap.Int("files", len(job.Files)),
		zap.Int("worker_id", workerID))

	job.Status = models.StatusProcessing
	q.saveJobState(ctx, &job)

	resultURL, skipped, err := q.processJob(ctx, &job)
	job.Skipped = skipped
	if err != nil {
		job.Status = models.StatusFailed
		job.Error = err.Error()
		q.logger.Error("Job processing failed",
			zap.String("job_id", job.ID),
			zap.Error(err))
	} else {
		job.Status = models.StatusCompleted
		job.ResultURL = resultURL
		q.logger.Info("Job completed",
			zap.String("job_id", job.ID),
			zap.String("result_url", resultURL))
	}

	q.saveJobState(ctx, &job)

	if err := msg.Ack(false); err != nil {
		q.logger.Error("Failed to ack message",
			zap.String("job_id", job.ID),
			zap.Error(err))
	}
}

// processJob runs the transform over every file in the job, bundles
// the survivors and uploads the result. A single survivor is uploaded
// raw, several go out as one ZIP archive.
func (q *QueueService) processJob(ctx context.Context, job *models.BatchJob) (string, []models.SkippedFile, error) {
	var (
		images  []*models.ProcessedImage
		skipped []models.SkippedFile
	)

	for _, file := range job.Files {
		img, err := q.processor.Process(file.Data, file.Filename, &job.Request)
		if err != nil {
			skipped = append(skipped, models.SkippedFile{
				Filename: file.Filename,
				Reason:   err.Error(),
			})
			continue
		}
		images = append(images, img)
	}

	if len(images) == 0 {
		return "", skipped, fmt.Errorf("all files in job were empty or invalid")
	}

	if len(images) == 1 {
		url, err := q.storage.Upload(ctx, images[0].Data, images[0].Filename, models.ContentType(images[0].Format))
		if err != nil {
			return "", skipped, fmt.Errorf("failed to upload result: %w", err)
		}
		return url, skipped, nil
	}

	data, err := q.assembler.Bundle(images)
	if err != nil {
		return "", skipped, fmt.Errorf("failed to bundle results: %w", err)
	}

	url, err := q.storage.Upload(ctx, data, job.ID+".zip", "application/zip")
	if err != nil {
		return "", skipped, fmt.Errorf("failed to upload archive: %w", err)
	}
	return url, skipped, nil
}

func (q *QueueService) saveJobState(ctx context.Context, job *models.BatchJob) {
	if err := q.storage.SaveJob(ctx, job); err != nil {
		q.logger.Warn("Failed to save job state",
			zap.String("job_id", job.ID),
			zap.Error(err))
	}
}
