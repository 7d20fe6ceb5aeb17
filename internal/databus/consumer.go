// Package databus runs bus handlers over a kafka consumer-group reader.
package databus

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/s21platform/family-web/internal/config"
)

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Handler func(ctx context.Context, in []byte) error

type Logger interface {
	Info(msg string)
	Error(msg string)
}

type Metrics interface {
	WorkerEvent(topic string, err error)
}

type Consumer struct {
	reader  Reader
	topic   string
	logger  Logger
	metrics Metrics

	retries int
	backoff time.Duration
}

func NewReader(cfg *config.Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)},
		GroupID:     groupID,
		Topic:       cfg.Kafka.MemberTopic,
		StartOffset: kafka.LastOffset,
	})
}

func NewConsumer(reader Reader, topic string, logger Logger, metrics Metrics) *Consumer {
	return &Consumer{
		reader:  reader,
		topic:   topic,
		logger:  logger,
		metrics: metrics,
		retries: 3,
		backoff: time.Second,
	}
}

// Run feeds every message to handle until ctx is done. A message whose
// handler keeps failing is committed after the last retry so one bad event
// cannot stall the partition.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error(fmt.Sprintf("failed to fetch message from %s: %v", c.topic, err))
			if !sleep(ctx, c.backoff) {
				return nil
			}
			continue
		}

		err = c.process(ctx, m.Value, handle)
		if c.metrics != nil {
			c.metrics.WorkerEvent(c.topic, err)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error(fmt.Sprintf("dropping message %s/%d/%d: %v", m.Topic, m.Partition, m.Offset, err))
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
			c.logger.Error(fmt.Sprintf("failed to commit message %s/%d/%d: %v", m.Topic, m.Partition, m.Offset, err))
		}
	}
}

func (c *Consumer) process(ctx context.Context, in []byte, handle Handler) error {
	err := handle(ctx, in)
	backoff := c.backoff
	for i := 0; err != nil && i < c.retries; i++ {
		if !sleep(ctx, backoff) {
			return ctx.Err()
		}
		backoff *= 2
		err = handle(ctx, in)
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
