package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"restaurant-pos/models"
)

// ReceiptPublisher sends finalized transactions to a RabbitMQ queue consumed
// by an external receipt-printer daemon. It satisfies services.BillPrinter.
type ReceiptPublisher struct {
	conn  *amqp091.Connection
	ch    *amqp091.Channel
	queue string
}

func NewReceiptPublisher(url, queue string) (*ReceiptPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &ReceiptPublisher{conn: conn, ch: ch, queue: queue}, nil
}

// PrintBill publishes the transaction as a persistent JSON message, with the
// transaction id as correlation id so the printer daemon can dedupe.
func (p *ReceiptPublisher) PrintBill(ctx context.Context, tx models.Transaction) error {
	body, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("marshal receipt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pub := amqp091.Publishing{
		DeliveryMode:  amqp091.Persistent,
		ContentType:   "application/json",
		Body:          body,
		CorrelationId: tx.ID,
		Timestamp:     tx.Timestamp,
	}
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("publish receipt: %w", err)
	}
	return nil
}

func (p *ReceiptPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
