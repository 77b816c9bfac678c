package db

import (
	"context"

	"ShortVid.com/cmd/model"
)

func CreateNotification(ctx context.Context, notification *model.Notification) error {
	return DB.WithContext(ctx).Create(notification).Error
}

// GetNotificationsByUser 按时间倒序获取用户通知
func GetNotificationsByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Notification, error) {
	notifications := make([]*model.Notification, 0, pageSize)
	if err := DB.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ?", userId).
		Order("created_at Desc").
		Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
