// Package events publishes domain events and outbound mail requests to Kafka.
// Messages are JSON envelopes of the form {type, timestamp, payload}.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/timex"
	"github.com/segmentio/kafka-go"
)

// Event types.
const (
	TypeUserRegistered         = "user.registered"
	TypeSessionReuseDetected   = "session.reuse_detected"
	TypePasswordResetCompleted = "password.reset_completed"
	TypeEmail                  = "EMAIL"
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher is what services depend on.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
	SendMail(ctx context.Context, mail Mail) error
	Close() error
}

// Message is the envelope written to both topics.
type Message struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Mail asks the mail consumer to deliver a message.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// KafkaPublisher writes events and mail to two topics.
type KafkaPublisher struct {
	events Writer
	mail   Writer
	now    timex.Clock
	log    logging.Logger
}

const writerBatchTimeout = 10 * time.Millisecond

// newKafkaWriter returns an asynchronous writer for topic. WriteMessages
// returns once the message is queued; delivery failures are reported to
// Completion and logged there.
func newKafkaWriter(brokers []string, topic string, log logging.Logger) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           writerBatchTimeout,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error(context.Background(), "kafka delivery failed", "topic", topic, "messages", len(messages), "error", err)
			}
		},
	}
}

// NewKafkaPublisher connects writers for both topics on brokers.
func NewKafkaPublisher(brokers []string, eventsTopic, mailTopic string, log logging.Logger) *KafkaPublisher {
	return NewPublisherWithWriters(
		newKafkaWriter(brokers, eventsTopic, log),
		newKafkaWriter(brokers, mailTopic, log),
		nil, log)
}

// NewPublisherWithWriters allows injecting test writers. A nil clock means
// timex.Now.
func NewPublisherWithWriters(events, mail Writer, now timex.Clock, log logging.Logger) *KafkaPublisher {
	if now == nil {
		now = timex.Now
	}
	return &KafkaPublisher{events: events, mail: mail, now: now, log: log.With("module", "events")}
}

func (p *KafkaPublisher) write(ctx context.Context, w Writer, msgType, key string, payload any) error {
	b, err := json.Marshal(Message{Type: msgType, Timestamp: p.now(), Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", msgType, err)
	}
	if err := w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: b}); err != nil {
		p.log.Error(ctx, "kafka write failed", "type", msgType, "error", err)
		return fmt.Errorf("write %s: %w", msgType, err)
	}
	return nil
}

// Publish writes a domain event keyed by key, usually the principal id.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	return p.write(ctx, p.events, eventType, key, payload)
}

// SendMail writes an EMAIL message keyed by recipient.
func (p *KafkaPublisher) SendMail(ctx context.Context, mail Mail) error {
	return p.write(ctx, p.mail, TypeEmail, mail.To, mail)
}

func (p *KafkaPublisher) Close() error {
	errE := p.events.Close()
	errM := p.mail.Close()
	if errE != nil {
		return errE
	}
	return errM
}

// Nop drops everything. Used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, any) error { return nil }
func (Nop) SendMail(context.Context, Mail) error               { return nil }
func (Nop) Close() error                                       { return nil }
