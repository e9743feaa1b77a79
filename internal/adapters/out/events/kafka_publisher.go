package events

import (
	"context"
	"fmt"

	"havenpos/internal/core/domain/model/order"
	"havenpos/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes StatusChanged events to one topic, keyed by order id
// so that all changes of an order land on the same partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(host, topic string) (*KafkaPublisher, error) {
	if host == "" {
		return nil, errs.NewValueIsRequiredError("host")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(host),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}, nil
}

func (p *KafkaPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	payload, err := encodeStatusChanged(event)
	if err != nil {
		return fmt.Errorf("encode status change: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: payload,
		Time:  event.At,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte("order.status_changed")},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write status change of order %s: %w", event.OrderID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
