package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/application/messaging"
	"github.com/jobsboard/integration-bridge/internal/domain/integration"
	"github.com/jobsboard/integration-bridge/internal/infrastructure/logger"
)

// Handler is the downstream message handler; satisfied by the application
// dispatcher.
type Handler interface {
	HandleMessage(ctx context.Context, msg messaging.Message) error
}

// ListClient is the subset of Redis list operations the consumer uses;
// satisfied by *redis.Client.
type ListClient interface {
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// Config holds consumer settings.
type Config struct {
	// Key is the Redis list the consumer reads from
	Key string
	// DeadLetterKey is the Redis list failed messages end up on
	DeadLetterKey string
	// PollTimeout is the BLPOP block timeout; also bounds shutdown latency
	PollTimeout time.Duration
	// HandlerTimeout bounds the processing of a single message
	HandlerTimeout time.Duration
	// MaxReceiveCount is the number of deliveries before dead-lettering
	MaxReceiveCount int
}

// Consumer pops messages off a Redis list and feeds them to the handler.
// Failures that redelivery cannot fix go straight to the dead-letter list;
// any other failed message is pushed back onto the tail of the list until
// its receive count reaches MaxReceiveCount, then moved to the dead-letter
// list. Queue redelivery is the only retry mechanism in the system.
type Consumer struct {
	client  ListClient
	handler Handler
	config  Config
	logger  *zap.Logger
}

// NewConsumer creates a new queue consumer.
func NewConsumer(client ListClient, handler Handler, config Config, log *zap.Logger) *Consumer {
	if config.PollTimeout <= 0 {
		config.PollTimeout = 5 * time.Second
	}
	if config.HandlerTimeout <= 0 {
		config.HandlerTimeout = 60 * time.Second
	}
	if config.MaxReceiveCount < 1 {
		config.MaxReceiveCount = 3
	}
	return &Consumer{
		client:  client,
		handler: handler,
		config:  config,
		logger:  log.Named("queue"),
	}
}

// Run consumes messages until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("Queue consumer started",
		zap.String("key", c.config.Key),
		zap.String("dead_letter_key", c.config.DeadLetterKey),
		zap.Int("max_receive_count", c.config.MaxReceiveCount),
	)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Queue consumer stopped")
			return ctx.Err()
		default:
		}

		result, err := c.client.BLPop(ctx, c.config.PollTimeout, c.config.Key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // poll timeout, no message
			}
			if ctx.Err() != nil {
				c.logger.Info("Queue consumer stopped")
				return ctx.Err()
			}
			c.logger.Error("Failed to poll queue", zap.Error(err))
			// Back off briefly so a broken connection does not spin
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		// BLPop returns [key, value]
		if len(result) < 2 {
			continue
		}
		c.process(ctx, []byte(result[1]))
	}
}

// process handles a single raw queue entry.
func (c *Consumer) process(ctx context.Context, raw []byte) {
	env, err := DecodeEnvelope(raw)
	if err != nil {
		// No message ID to track; a malformed entry can only be dead-lettered
		c.logger.Error("Dropping malformed message to dead-letter queue", zap.Error(err))
		c.deadLetterRaw(ctx, raw)
		return
	}
	env.ReceiveCount++

	msgCtx, cancel := context.WithTimeout(ctx, c.config.HandlerTimeout)
	defer cancel()
	msgCtx, msgLogger := logger.WithMessageID(msgCtx, c.logger, env.MessageID)

	if err := c.handler.HandleMessage(msgCtx, env.ToMessage()); err != nil {
		msgLogger.Error("Message handling failed",
			zap.Int("receive_count", env.ReceiveCount),
			zap.Error(err),
		)
		if isFatal(err) || env.ReceiveCount >= c.config.MaxReceiveCount {
			c.deadLetter(ctx, env)
			return
		}
		c.requeue(ctx, env)
		return
	}

	msgLogger.Debug("Message handled", zap.Int("receive_count", env.ReceiveCount))
}

// isFatal reports whether redelivery could ever succeed for the error. A
// malformed payload, an unroutable event, a missing mapping, and a missing
// reference-data value are all stable properties of the message or of data
// loaded out of band; retrying them only delays the dead-letter verdict.
func isFatal(err error) bool {
	var refErr *integration.ReferenceDataNotFoundError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, messaging.ErrMissingEventType),
		errors.Is(err, messaging.ErrUnknownEventType),
		errors.Is(err, integration.ErrMappingNotFound),
		errors.Is(err, integration.ErrMappingAlreadyExists),
		errors.Is(err, integration.ErrMappingInvalidLocalID),
		errors.Is(err, integration.ErrMappingInvalidExternalID),
		errors.As(err, &refErr),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return true
	}
	return false
}

// requeue pushes the message back onto the tail of the list for another
// attempt.
func (c *Consumer) requeue(ctx context.Context, env *Envelope) {
	encoded, err := env.Encode()
	if err != nil {
		c.logger.Error("Failed to re-encode message", zap.String("message_id", env.MessageID), zap.Error(err))
		return
	}
	// Use a detached context for the requeue write so shutdown does not lose
	// the message mid-flight.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := c.client.RPush(writeCtx, c.config.Key, encoded).Err(); err != nil {
		c.logger.Error("Failed to requeue message", zap.String("message_id", env.MessageID), zap.Error(err))
	}
}

// deadLetter moves the message to the dead-letter list.
func (c *Consumer) deadLetter(ctx context.Context, env *Envelope) {
	encoded, err := env.Encode()
	if err != nil {
		c.logger.Error("Failed to re-encode message", zap.String("message_id", env.MessageID), zap.Error(err))
		return
	}
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := c.client.RPush(writeCtx, c.config.DeadLetterKey, encoded).Err(); err != nil {
		c.logger.Error("Failed to dead-letter message", zap.String("message_id", env.MessageID), zap.Error(err))
		return
	}
	c.logger.Warn("Message dead-lettered",
		zap.String("message_id", env.MessageID),
		zap.Int("receive_count", env.ReceiveCount),
	)
}

func (c *Consumer) deadLetterRaw(ctx context.Context, raw []byte) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := c.client.RPush(writeCtx, c.config.DeadLetterKey, raw).Err(); err != nil {
		c.logger.Error("Failed to dead-letter malformed message", zap.Error(err))
	}
}
