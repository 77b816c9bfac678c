package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

type NotificationEventHandler interface {
	HandleNotificationEvent(ctx context.Context, event *NotificationEvent) error
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// 设置QoS，限制未确认消息数量
	err = ch.Qos(
		10,    // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &Consumer{
		conn:    conn,
		channel: ch,
	}, nil
}

func (c *Consumer) ConsumeNotificationEvents(ctx context.Context, handler NotificationEventHandler) error {
	msgs, err := c.channel.Consume(
		NotificationEventQueue,
		"",    // consumer
		false, // auto-ack (手动确认)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				hlog.Info("Notification event consumer context cancelled")
				return
			case d, ok := <-msgs:
				if !ok {
					hlog.Info("Notification event consumer channel closed")
					return
				}

				var event NotificationEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					hlog.Errorf("Failed to unmarshal notification event: %v", err)
					d.Nack(false, false) // 拒绝消息，不重新入队
					continue
				}

				if err := handler.HandleNotificationEvent(ctx, &event); err != nil {
					hlog.Errorf("Failed to handle notification event %s: %v", event.EventID, err)
					d.Nack(false, true) // 处理失败，重新入队
					continue
				}

				d.Ack(false)
			}
		}
	}()

	return nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
