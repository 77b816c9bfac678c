package model

// Notification 由消息队列消费者异步落库
type Notification struct {
	NotificationId   int64  `json:"notification_id" gorm:"primaryKey"`
	UserId           int64  `json:"user_id" gorm:"index"`
	FromUserId       int64  `json:"from_user_id"`
	NotificationType string `json:"notification_type" gorm:"size:32"`
	TargetId         int64  `json:"target_id"`
	Content          string `json:"content"`
	CreatedAt        string `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
