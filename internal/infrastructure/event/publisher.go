package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Event types double as routing keys on the topic exchange.
const (
	TypeProfileUpdated = "profile.updated"
	TypeMemberSynced   = "member.synced"
)

// Event is the message body published after a successful write.
type Event struct {
	Type         string    `json:"event_type"`
	Collection   string    `json:"collection"`
	DocumentID   string    `json:"document_id"`
	Completeness *int      `json:"completeness,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// RabbitPublisher publishes events to a durable topic exchange. A publisher
// built with an empty URL is disabled and drops every event.
type RabbitPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	enabled  bool
	log      *slog.Logger
}

func NewRabbitPublisher(rabbitURL, exchange string, log *slog.Logger) (*RabbitPublisher, error) {
	if rabbitURL == "" {
		log.Warn("rabbitmq url is empty, event publishing is disabled")
		return &RabbitPublisher{exchange: exchange, log: log}, nil
	}

	conn, err := amqp091.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
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

	log.Info("event publisher initialized", "exchange", exchange)

	return &RabbitPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		enabled:  true,
		log:      log,
	}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, event *Event) error {
	if !p.enabled {
		p.log.Debug("event publishing disabled, skipping event", "event_type", event.Type)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.Timestamp,
			Body:         body,
			Headers: amqp091.Table{
				"event_type":  event.Type,
				"collection":  event.Collection,
				"document_id": event.DocumentID,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.log.Debug("published event", "event_type", event.Type, "document_id", event.DocumentID)
	return nil
}

func (p *RabbitPublisher) Close() error {
	if !p.enabled {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Recorder keeps published events in memory.
type Recorder struct {
	Events []*Event
	Err    error
}

func (r *Recorder) Publish(_ context.Context, event *Event) error {
	if r.Err != nil {
		return r.Err
	}
	r.Events = append(r.Events, event)
	return nil
}

func (r *Recorder) Close() error { return nil }
