package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// KafkaPublisher публикует события записей в kafka
// Ключ сообщения - ID записи, чтобы события одной записи попадали в одну партицию
type KafkaPublisher struct {
	writer MessageWriter
	log    Logger
	now    func() time.Time
}

// NewKafkaPublisher создает publisher с kafka.Writer на указанный топик
func NewKafkaPublisher(brokers []string, topic string, log Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return NewPublisherWithWriter(writer, log)
}

// NewPublisherWithWriter создает publisher поверх готового писателя
func NewPublisherWithWriter(writer MessageWriter, log Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		log:    log,
		now:    time.Now,
	}
}

// Publish отправляет событие о записи
func (p *KafkaPublisher) Publish(ctx context.Context, eventType Type, userID string, appointment *domain.Appointment) error {
	event := Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		OccurredAt:  p.now().UTC(),
		UserID:      userID,
		Appointment: FromDomainAppointment(appointment),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(appointment.ID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("Publish: failed to publish %s for appointment id=%d: %v", eventType, appointment.ID, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.log.Info("Publish: %s for appointment id=%d, event_id=%s", eventType, appointment.ID, event.ID)
	return nil
}

// Close закрывает писателя
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher используется, когда события выключены в конфигурации
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(context.Context, Type, string, *domain.Appointment) error {
	return nil
}

// Close ничего не делает
func (NoopPublisher) Close() error {
	return nil
}
