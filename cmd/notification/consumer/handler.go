package consumer

import (
	"context"
	"time"

	"ShortVid.com/cmd/model"
	"ShortVid.com/cmd/notification/dal/db"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/mq"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// NotificationPersister 消费通知事件并落库
type NotificationPersister struct{}

func NewNotificationPersister() *NotificationPersister {
	return &NotificationPersister{}
}

func (h *NotificationPersister) HandleNotificationEvent(ctx context.Context, event *mq.NotificationEvent) error {
	notification := &model.Notification{
		NotificationId:   utils.GenId(),
		UserId:           event.UserID,
		FromUserId:       event.FromUserID,
		NotificationType: event.NotificationType,
		TargetId:         event.TargetID,
		Content:          event.Content,
		CreatedAt:        time.Unix(event.Timestamp, 0).Format(constants.DataFormate),
	}
	if err := db.CreateNotification(ctx, notification); err != nil {
		return errors.WithMessage(err, "dao.CreateNotification failed")
	}
	hlog.CtxInfof(ctx, "Notification persisted: type=%s user=%d from=%d", event.NotificationType, event.UserID, event.FromUserID)
	return nil
}
