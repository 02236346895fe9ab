package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"bhinnashad-api/models"
)

// Publisher emits typed lifecycle events so collaborators (kitchen ticket
// printer, notification screens) subscribe instead of polling the API.
// Publishing is fire-and-forget: a broker outage must never fail an order
// or a settlement.
type Publisher interface {
	OrderCreated(order *models.Order)
	OrderStatusChanged(order *models.Order, from, to string)
	BillCreated(bill *models.Bill)
	BillPaid(bill *models.Bill)
	Close()
}

const exchangeName = "pos.events"

type orderEvent struct {
	OrderID     uint   `json:"order_id"`
	OrderType   string `json:"order_type"`
	TableNumber *int   `json:"table_number,omitempty"`
	Status      string `json:"status"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
}

type billEvent struct {
	BillID      uint    `json:"bill_id"`
	TableNumber *int    `json:"table_number,omitempty"`
	OrderIDs    []uint  `json:"order_ids"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
}

type amqpPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher connects to RabbitMQ and declares the topic exchange the
// printing/notification collaborators bind to.
func NewAMQPPublisher(url string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &amqpPublisher{conn: conn, channel: ch}, nil
}

func (p *amqpPublisher) publish(routingKey string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("events: failed to marshal %s payload: %v", routingKey, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("events: failed to publish %s: %v", routingKey, err)
	}
}

func (p *amqpPublisher) OrderCreated(order *models.Order) {
	p.publish("order.created", orderEvent{
		OrderID:     order.ID,
		OrderType:   order.OrderType,
		TableNumber: order.TableNumber,
		Status:      order.Status,
	})
}

func (p *amqpPublisher) OrderStatusChanged(order *models.Order, from, to string) {
	p.publish("order.status_changed", orderEvent{
		OrderID:     order.ID,
		OrderType:   order.OrderType,
		TableNumber: order.TableNumber,
		Status:      to,
		From:        from,
		To:          to,
	})
}

func (p *amqpPublisher) BillCreated(bill *models.Bill) {
	p.publish("bill.created", billEvent{
		BillID:      bill.ID,
		TableNumber: bill.TableNumber,
		OrderIDs:    bill.OrderIDs,
		Total:       bill.Total,
		Status:      bill.Status,
	})
}

func (p *amqpPublisher) BillPaid(bill *models.Bill) {
	p.publish("bill.paid", billEvent{
		BillID:      bill.ID,
		TableNumber: bill.TableNumber,
		OrderIDs:    bill.OrderIDs,
		Total:       bill.Total,
		Status:      bill.Status,
	})
}

func (p *amqpPublisher) Close() {
	p.channel.Close()
	p.conn.Close()
}

// NoopPublisher is used when no broker is configured (and in tests).
type NoopPublisher struct{}

func (NoopPublisher) OrderCreated(*models.Order)                        {}
func (NoopPublisher) OrderStatusChanged(*models.Order, string, string)  {}
func (NoopPublisher) BillCreated(*models.Bill)                          {}
func (NoopPublisher) BillPaid(*models.Bill)                             {}
func (NoopPublisher) Close()                                            {}
