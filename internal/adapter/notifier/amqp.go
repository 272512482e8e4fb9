package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lets-heal/internal/domain"

	"github.com/rabbitmq/amqp091-go"
)

const routingKeyPrefix = "notification."

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPNotifier publishes notifications to a topic exchange for an external
// mailer to consume.
type AMQPNotifier struct {
	conn     *amqp091.Connection
	channel  amqpChannel
	exchange string
}

// NewAMQPNotifier dials the broker and declares a durable topic exchange.
func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &AMQPNotifier{conn: conn, channel: channel, exchange: exchange}, nil
}

// RoutingKey derives the topic for a notification from its subject,
// e.g. "notification.appointment_confirmation".
func RoutingKey(n domain.Notification) string {
	key := make([]rune, 0, len(n.Subject))
	for _, r := range n.Subject {
		switch {
		case r >= 'A' && r <= 'Z':
			key = append(key, r+('a'-'A'))
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			key = append(key, r)
		default:
			key = append(key, '_')
		}
	}
	return routingKeyPrefix + string(key)
}

// Send implements domain.Notifier
func (a *AMQPNotifier) Send(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = a.channel.PublishWithContext(
		pubCtx,
		a.exchange,    // exchange
		RoutingKey(n), // routing key
		false,         // mandatory
		false,         // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Close releases the channel and connection.
func (a *AMQPNotifier) Close() error {
	if a.channel != nil {
		a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
