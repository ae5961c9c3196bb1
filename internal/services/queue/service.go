package queue

import (
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/phamqv/image-bundler/internal/services/archive"
	"github.com/phamqv/image-bundler/internal/services/processor"
	"github.com/phamqv/image-bundler/internal/services/storage"
)

// QueueService runs bundle jobs asynchronously over RabbitMQ. Job
// state lives in the storage service; processed bundles are uploaded
// to object storage and exposed by URL.
type QueueService struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	logger    *zap.Logger
	queueName string
	processor *processor.ImageProcessor
	assembler *archive.Assembler
	storage   *storage.StorageService
}

func NewQueueService(
	rabbitmqURL string,
	processor *processor.ImageProcessor,
	assembler *archive.Assembler,
	storage *storage.StorageService,
	logger *zap.Logger,
) (*QueueService, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	queueName := "image_bundle_jobs"

	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &QueueService{
		conn:      conn,
		channel:   channel,
		logger:    logger,
		queueName: queueName,
		processor: processor,
		assembler: assembler,
		storage:   storage,
	}, nil
}

// HealthCheck reports whether the RabbitMQ connection is usable.
func (q *QueueService) HealthCheck() string {
	if q.conn == nil || q.conn.IsClosed() {
		return "unhealthy: connection closed"
	}
	if q.channel == nil {
		return "unhealthy: channel not available"
	}
	return "healthy"
}

// Close closes the queue connection
func (q *QueueService) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
	return nil
}
