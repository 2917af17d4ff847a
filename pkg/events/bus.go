package events

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus is the in-process editor event bus on a Watermill go-channel pub/sub.
// All signals between the editing core and its collaborators (cursor
// observers, autosave, the editor shell) travel through it.
type Bus struct {
	pubSub *gochannel.GoChannel
}

// envelope is the wire form of an event on the bus.
type envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt string                 `json:"occurred_at"`
}

func NewBus(logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, logger),
	}
}

// Publish sends the event on the topic. Publishing never blocks the caller
// beyond channel delivery; failures are returned, not retried.
func (b *Bus) Publish(topic string, evt Event) error {
	payload, err := json.Marshal(envelope{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp().Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return b.pubSub.Publish(topic, msg)
}

// Subscribe returns the message stream for a topic. Consumers must Ack
// every message.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

// Close shuts the underlying pub/sub down.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// Decode parses a bus message back into its event envelope.
func Decode(msg *message.Message) (BaseEvent, error) {
	var env envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		return BaseEvent{}, err
	}
	return BaseEvent{Type: env.Type, Data: env.Data}, nil
}
