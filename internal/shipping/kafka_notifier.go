package shipping

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka.Writer the notifier needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes shipment notices to the carrier topic. The
// checkout id is the message key so notices for one checkout stay ordered.
type KafkaNotifier struct {
	writer messageWriter
}

func NewKafkaNotifier(brokers ...string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "shipment-notices",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaNotifier{writer: w}
}

func (n *KafkaNotifier) Ship(ctx context.Context, shipment Shipment) error {
	payload := map[string]interface{}{
		"checkout_id":  shipment.CheckoutID,
		"lines":        shipment.Lines,
		"total_weight": shipment.TotalWeight(),
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal shipment notice: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(shipment.CheckoutID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("ShipmentNotice")},
		},
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish shipment notice: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
