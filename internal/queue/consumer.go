package queue

import (
	"context"
	"sync"
	"time"

	"passenger-service/pkg/config"
	"passenger-service/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Consumer polls the reservation notification queue and drains handled
// messages. It runs as a background service alongside the HTTP server.
type Consumer struct {
	client       *sqs.Client
	queueURL     string
	waitTime     time.Duration
	pollInterval time.Duration
	logger       *logger.Logger

	mutex   sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewConsumer creates a queue consumer from configuration
func NewConsumer(ctx context.Context, cfg config.QueueConfig, log *logger.Logger) (*Consumer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}

	return &Consumer{
		client:       sqs.NewFromConfig(awsCfg),
		queueURL:     cfg.URL,
		waitTime:     cfg.WaitTime,
		pollInterval: cfg.PollInterval,
		logger:       log.WithComponent("queue"),
	}, nil
}

// Start launches the polling loop
func (c *Consumer) Start() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.running {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	c.running = true

	go c.poll(ctx)

	c.logger.Info("Queue consumer started for %s", c.queueURL)
	return nil
}

// Stop terminates the polling loop and waits for it to drain
func (c *Consumer) Stop() {
	c.mutex.Lock()
	if !c.running {
		c.mutex.Unlock()
		return
	}
	c.running = false
	c.cancel()
	done := c.done
	c.mutex.Unlock()

	<-done
	c.logger.Info("Queue consumer stopped")
}

// IsRunning reports whether the polling loop is active
func (c *Consumer) IsRunning() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.running
}

// poll receives messages until the context is cancelled
func (c *Consumer) poll(ctx context.Context) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		output, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     int32(c.waitTime.Seconds()),
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Error("Failed to receive messages: %v", err)
			time.Sleep(c.pollInterval)
			continue
		}

		for _, message := range output.Messages {
			c.handleMessage(ctx, message.Body, message.ReceiptHandle)
		}

		time.Sleep(c.pollInterval)
	}
}

// handleMessage logs the notification and removes it from the queue.
// Messages are informational (reservation confirmations from the booking
// pipeline); a failed delete leaves the message for redelivery.
func (c *Consumer) handleMessage(ctx context.Context, body *string, receiptHandle *string) {
	if body != nil {
		c.logger.Info("Reservation notification received: %s", *body)
	}

	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: receiptHandle,
	})
	if err != nil && ctx.Err() == nil {
		c.logger.Error("Failed to delete message: %v", err)
	}
}
