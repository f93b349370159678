package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wallet-service/internal/core/domain"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// WalletDispatcher implements ports.WalletDispatcher. Each mutated wallet
// is published as a full JSON snapshot to the dispatch queue through the
// default exchange, with the queue name as routing key.
type WalletDispatcher struct {
	client *Client
	queue  string
}

// NewWalletDispatcher declares the durable dispatch queue and returns a
// dispatcher bound to it.
func NewWalletDispatcher(client *Client, queue string) (*WalletDispatcher, error) {
	if _, err := client.channel.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declaring dispatch queue: %w", err)
	}
	return &WalletDispatcher{client: client, queue: queue}, nil
}

// Dispatch publishes the wallet snapshot. Callers treat failures as
// best-effort; the state was already persisted.
func (d *WalletDispatcher) Dispatch(w *domain.Wallet) error {
	body, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshaling wallet snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = d.client.channel.PublishWithContext(ctx,
		"",      // default exchange
		d.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing wallet snapshot: %w", err)
	}
	return nil
}
