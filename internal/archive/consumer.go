package archive

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer drains the checkout-receipts topic into the receipts table.
// Duplicate events (redelivery after a crash between insert and commit) are
// absorbed via the unique receipt id.
type Consumer struct {
	repo   Repository
	reader *kafka.Reader
}

func NewConsumer(repo Repository, brokers ...string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    receiptsTopic,
		GroupID:  "receipts-archive",
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{repo: repo, reader: reader}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processMessage(ctx)
	}
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		log.Printf("error closing kafka reader: %v", err)
	}
}

func (c *Consumer) processMessage(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("error reading message: %v", err)
		return
	}

	if err := c.handleEvent(ctx, m.Value); err != nil {
		log.Printf("failed to archive receipt: %v", err)
	}
}

func (c *Consumer) handleEvent(ctx context.Context, payload []byte) error {
	var event CheckoutCompletedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}
	if event.ReceiptID == "" {
		return errors.New("event has no receipt_id")
	}

	completedAt, err := time.Parse(time.RFC3339Nano, event.CompletedAt)
	if err != nil {
		completedAt = time.Now().UTC()
	}

	record := &ReceiptRecord{
		ID:          event.ReceiptID,
		CustomerID:  event.CustomerID,
		Subtotal:    event.Subtotal,
		ShippingFee: event.ShippingFee,
		Total:       event.Total,
		Lines:       event.Lines,
		CompletedAt: completedAt,
	}

	if err := c.repo.CreateReceipt(ctx, record); err != nil {
		if errors.Is(err, ErrDuplicateReceipt) {
			log.Printf("receipt %s already archived, skipping", event.ReceiptID)
			return nil
		}
		return err
	}

	log.Printf("receipt %s archived for customer %s", event.ReceiptID, event.CustomerID)
	return nil
}
