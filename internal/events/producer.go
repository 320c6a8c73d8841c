package events

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer is a best-effort async publisher: Publish drops the message
// into an inbox, a single goroutine drains it. One writer serves every
// topic (messages carry their own topic). The engine never waits on
// Kafka; losing an event does not lose an order.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
}

func NewProducer(brokers []string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer func() {
			_ = p.w.Close()
			close(p.closeCh)
		}()
		for {
			select {
			case <-ctx.Done():
				// flush sisa inbox, jangan tunggu pesan baru
				for {
					select {
					case m, ok := <-p.inbox:
						if !ok {
							return
						}
						_ = p.w.WriteMessages(context.Background(), m)
					default:
						return
					}
				}
			case m, ok := <-p.inbox:
				if !ok {
					return
				}
				_ = p.w.WriteMessages(context.Background(), m)
			}
		}
	}()
}

// Publish enqueues an envelope for topic. Nil receiver is a no-op so
// callers can keep one code path whether or not brokers are configured.
func (p *Producer) Publish(topic string, key []byte, env Envelope) {
	if p == nil {
		return
	}
	p.inbox <- kafka.Message{
		Topic: topic,
		Key:   key,
		Value: MustMarshal(env),
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(env.EventType)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	}
}

// Tutup channel supaya goroutine nge-flush sisa pesan lalu exit rapi.
func (p *Producer) Close() {
	if p == nil {
		return
	}
	close(p.inbox)
}

func (p *Producer) WaitClosed() {
	if p == nil {
		return
	}
	<-p.closeCh
}
