package rabbitmq

import (
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const dialTimeout = 10 * time.Second

// Client wraps an AMQP connection and channel shared by the wallet
// dispatcher and the user event consumer.
type Client struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	log     zerolog.Logger
}

// NewClient dials RabbitMQ and opens a channel. The dial is bounded so
// startup does not hang on an unreachable broker.
func NewClient(url string, log zerolog.Logger) (*Client, error) {
	conn, err := amqp091.DialConfig(url, amqp091.Config{Dial: amqp091.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("dialing rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening rabbitmq channel: %w", err)
	}

	log.Info().Msg("RabbitMQ connection established")

	return &Client{conn: conn, channel: ch, log: log}, nil
}

// Close closes the channel and connection.
func (c *Client) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
