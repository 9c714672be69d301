// internal/queue/queue.go
package queue

import (
	"encoding/json"

	"github.com/streadway/amqp"
)

// SendJob is the payload between the send endpoint and the worker.
type SendJob struct {
	EmailID int `json:"email_id"`
}

// Publisher enqueues send jobs.
type Publisher interface {
	Publish(job SendJob) error
	Close() error
}

// AMQPQueue wraps one connection/channel pair against a durable queue.
// Both the server (publish) and the worker (consume) go through it.
type AMQPQueue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	name    string
}

func Connect(url, name string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &AMQPQueue{conn: conn, channel: ch, name: name}, nil
}

func (q *AMQPQueue) Publish(job SendJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.channel.Publish(
		"",
		q.name,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Consume registers a manual-ack consumer on the queue.
func (q *AMQPQueue) Consume() (<-chan amqp.Delivery, error) {
	return q.channel.Consume(
		q.name,
		"",
		false, // autoAck off for reliability
		false,
		false,
		false,
		nil,
	)
}

// Requeue republishes a delivery with an incremented retry counter.
func (q *AMQPQueue) Requeue(d amqp.Delivery, retryCount int) error {
	return q.channel.Publish(
		"",
		q.name,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Headers:      amqp.Table{"x-retry-count": int32(retryCount)},
			Body:         d.Body,
		},
	)
}

func (q *AMQPQueue) Close() error {
	q.channel.Close()
	return q.conn.Close()
}

// RetryCount reads the x-retry-count header from a delivery.
func RetryCount(d amqp.Delivery) int {
	if d.Headers == nil {
		return 0
	}
	switch v := d.Headers["x-retry-count"].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

var _ Publisher = (*AMQPQueue)(nil)
