package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wallet-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// UserConsumer listens on the user-created queue and provisions a default
// wallet for every new user announced there.
type UserConsumer struct {
	client      *Client
	queue       string
	provisioner ports.WalletProvisioner
	log         zerolog.Logger
}

// NewUserConsumer creates a consumer for the given queue.
func NewUserConsumer(client *Client, queue string, provisioner ports.WalletProvisioner, log zerolog.Logger) *UserConsumer {
	return &UserConsumer{
		client:      client,
		queue:       queue,
		provisioner: provisioner,
		log:         log,
	}
}

// Start declares the queue, begins consuming, and blocks until ctx is
// cancelled or the delivery stream closes.
func (c *UserConsumer) Start(ctx context.Context) error {
	if _, err := c.client.channel.QueueDeclare(
		c.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("declaring user queue: %w", err)
	}

	msgs, err := c.client.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consuming user queue: %w", err)
	}

	c.log.Info().Str("queue", c.queue).Msg("user event consumer started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("user event delivery channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

func (c *UserConsumer) handle(ctx context.Context, d amqp091.Delivery) {
	userID, err := parseUserID(d.Body)
	if err != nil {
		// Poison messages are dropped, not requeued.
		c.log.Error().Err(err).Str("body", string(d.Body)).Msg("dropping malformed user event")
		_ = d.Nack(false, false)
		return
	}

	if _, err := c.provisioner.ProvisionDefaultWallet(ctx, userID); err != nil {
		c.log.Error().Err(err).Str("user_id", userID.String()).Msg("default wallet provisioning failed, requeuing")
		_ = d.Nack(false, true)
		return
	}

	c.log.Info().Str("user_id", userID.String()).Msg("default wallet provisioned")
	_ = d.Ack(false)
}

// parseUserID accepts either a bare UUID body or a JSON envelope carrying
// the user id.
func parseUserID(body []byte) (uuid.UUID, error) {
	raw := strings.Trim(strings.TrimSpace(string(body)), `"`)
	if id, err := uuid.Parse(raw); err == nil {
		return id, nil
	}

	var envelope struct {
		UserID uuid.UUID `json:"user_id"`
		ID     uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.UserID != uuid.Nil {
			return envelope.UserID, nil
		}
		if envelope.ID != uuid.Nil {
			return envelope.ID, nil
		}
	}
	return uuid.Nil, errors.New("no user id in event payload")
}
