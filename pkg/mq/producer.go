package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

var defaultProducer *Producer

// InitProducer 初始化进程级生产者 连接失败时通知功能整体降级
func InitProducer(rabbitmqURL string) error {
	p, err := NewProducer(rabbitmqURL)
	if err != nil {
		return err
	}
	defaultProducer = p
	return nil
}

// GetProducer 未初始化时返回nil 调用方需自行判空
func GetProducer() *Producer {
	return defaultProducer
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	// 声明exchanges和queues
	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	// 声明交换机
	err := p.channel.ExchangeDeclare(
		NotificationEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare notification event exchange: %w", err)
	}

	// 声明队列
	_, err = p.channel.QueueDeclare(
		NotificationEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare notification event queue: %w", err)
	}

	// 绑定队列到交换机
	err = p.channel.QueueBind(
		NotificationEventQueue,
		"",
		NotificationEventExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind notification event queue: %w", err)
	}

	return nil
}

// PublishNotificationEvent 发布通知事件 通知为尽力而为 不参与主事务
func (p *Producer) PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		publishCtx,
		NotificationEventExchange,
		"",    // routing key
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			MessageId:    event.EventID,
		},
	)
	if err != nil {
		hlog.Errorf("Failed to publish notification event %s: %v", event.EventID, err)
		return err
	}
	return nil
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
