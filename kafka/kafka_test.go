package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

func TestPublishWritesEnvelope(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "procurement-test" {
			return fmt.Errorf("unexpected topic %q", msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "supplier_7" {
			return fmt.Errorf("unexpected key %q", key)
		}

		raw, _ := msg.Value.Encode()
		var event ProcurementEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			return err
		}
		if event.EventType != domain.EventSupplierCreated || event.EntityID != 7 || event.EventID == "" {
			return fmt.Errorf("unexpected envelope %+v", event)
		}
		if string(event.Payload) != `{"name":"Acme"}` {
			return fmt.Errorf("unexpected payload %s", event.Payload)
		}

		var sawType bool
		for _, h := range msg.Headers {
			if string(h.Key) == HeaderEventType && string(h.Value) == domain.EventSupplierCreated {
				sawType = true
			}
		}
		if !sawType {
			return errors.New("missing event_type header")
		}
		return nil
	})

	p := NewPublisherWithProducer(producer, "procurement-test")
	defer p.Close()

	err := p.Publish(context.Background(), domain.Event{
		Type:     domain.EventSupplierCreated,
		EntityID: 7,
		Payload:  map[string]string{"name": "Acme"},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestPublishReturnsSendError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer, "")
	defer p.Close()

	err := p.Publish(context.Background(), domain.Event{Type: domain.EventPurchaseOrderDeleted, EntityID: 1})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}
	if p.topic != DefaultTopic {
		t.Fatalf("expected default topic, got %q", p.topic)
	}
}

func message(t *testing.T, event ProcurementEvent) *sarama.ConsumerMessage {
	t.Helper()
	raw, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return &sarama.ConsumerMessage{
		Topic: DefaultTopic,
		Value: raw,
		Headers: []*sarama.RecordHeader{
			{Key: []byte(HeaderEventType), Value: []byte(event.EventType)},
			{Key: []byte(HeaderEventID), Value: []byte(event.EventID)},
		},
	}
}

func TestHandleMessageDispatchesByType(t *testing.T) {
	c := newConsumer(nil, "test", []string{DefaultTopic})

	var got []ProcurementEvent
	c.RegisterHandler(domain.EventPurchaseOrderCreated, func(_ context.Context, e ProcurementEvent) error {
		got = append(got, e)
		return nil
	})

	in := ProcurementEvent{EventID: "evt-1", EventType: domain.EventPurchaseOrderCreated, EntityID: 3}
	if err := c.handleMessage(context.Background(), message(t, in)); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}
	if len(got) != 1 || got[0].EntityID != 3 || got[0].Entity() != "purchase_order" {
		t.Fatalf("unexpected dispatch %+v", got)
	}

	other := ProcurementEvent{EventID: "evt-2", EventType: domain.EventSupplierDeleted, EntityID: 1}
	if err := c.handleMessage(context.Background(), message(t, other)); err != nil {
		t.Fatalf("unhandled types must be skipped, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("handler called for unregistered type")
	}
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	c := newConsumer(nil, "test", nil)
	err := c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")})
	if err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestHandleMessagePropagatesHandlerError(t *testing.T) {
	c := newConsumer(nil, "test", nil)
	boom := errors.New("boom")
	c.RegisterHandler(domain.EventSupplierUpdated, func(context.Context, ProcurementEvent) error { return boom })

	err := c.handleMessage(context.Background(), message(t, ProcurementEvent{EventType: domain.EventSupplierUpdated}))
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}
}
