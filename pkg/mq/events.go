package mq

// NotificationEvent 通知事件
type NotificationEvent struct {
	UserID           int64  `json:"user_id"`           // 接收者ID
	FromUserID       int64  `json:"from_user_id"`      // 发送者ID
	NotificationType string `json:"notification_type"` // like, follow, comment
	TargetID         int64  `json:"target_id"`         // 目标ID（视频或用户）
	Content          string `json:"content"`           // 通知内容
	Timestamp        int64  `json:"timestamp"`         // 时间戳
	EventID          string `json:"event_id"`          // 事件ID
}

const (
	// 交换机名称
	NotificationEventExchange = "notification_events"

	// 队列名称
	NotificationEventQueue = "notification_event_queue"
)
