// Package events публикует события об изменении сущностей в RabbitMQ.
//
// События (hotel.created, room.deleted и т.д.) публикуются после успешной
// записи в хранилище. Публикация не влияет на результат операции: ошибка
// публикации логируется вызывающей стороной и не откатывает запись.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Exchange — имя topic-exchange для событий изменения сущностей.
const Exchange = "entity-events"

// Publisher публикует JSON-события в RabbitMQ.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Event описывает событие изменения сущности.
type Event struct {
	Entity     string    `json:"entity"`      // hotel | room
	Action     string    `json:"action"`      // created | updated | deleted
	EntityID   int       `json:"entity_id"`   // Идентификатор сущности
	OccurredAt time.Time `json:"occurred_at"` // Время события
}

// NewPublisher подключается к RabbitMQ с ретраями и объявляет exchange.
func NewPublisher(connection string, retries int, delay time.Duration) (*Publisher, error) {
	const op = "events.NewPublisher"

	var conn *amqp.Connection
	var err error
	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			break
		}
		time.Sleep(delay)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.ExchangeDeclare(
		Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

// Publish публикует событие с routing key вида "<entity>.<action>".
func (p *Publisher) Publish(entity, action string, entityID int) error {
	const op = "events.Publish"
	event := Event{
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = p.ch.Publish(
		Exchange,
		fmt.Sprintf("%s.%s", entity, action),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает канал и соединение.
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
