package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mohamed-Amiir/RiseJourny/internal/domain"
	"github.com/segmentio/kafka-go"
)

const receiptsTopic = "checkout-receipts"

// CheckoutCompletedEvent is the wire shape shared by the publisher and the
// archive consumer.
type CheckoutCompletedEvent struct {
	ReceiptID   string               `json:"receipt_id"`
	CustomerID  string               `json:"customer_id"`
	Lines       []domain.ReceiptLine `json:"lines"`
	Subtotal    float64              `json:"subtotal"`
	ShippingFee float64              `json:"shipping_fee"`
	Total       float64              `json:"total"`
	CompletedAt string               `json:"completed_at"`
}

// Publisher emits completed-checkout receipts for the archive to consume.
type Publisher interface {
	PublishReceipt(ctx context.Context, receipt *domain.Receipt) error
}

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes receipts to the checkout-receipts topic, keyed by
// receipt id for per-checkout ordering.
type KafkaPublisher struct {
	writer kafkaWriter
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  receiptsTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishReceipt(ctx context.Context, receipt *domain.Receipt) error {
	event := CheckoutCompletedEvent{
		ReceiptID:   receipt.ID,
		CustomerID:  receipt.CustomerID,
		Lines:       receipt.Lines,
		Subtotal:    receipt.Subtotal,
		ShippingFee: receipt.ShippingFee,
		Total:       receipt.Total,
		CompletedAt: receipt.CompletedAt.Format(time.RFC3339Nano),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal receipt event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(receipt.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("CheckoutCompleted")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish receipt event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
