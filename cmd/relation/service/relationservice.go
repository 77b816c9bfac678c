package service

import (
	"context"
	"time"

	"ShortVid.com/cmd/relation/dal/db"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type RelationService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewRelationService(ctx context.Context, producer *mq.Producer) *RelationService {
	return &RelationService{ctx: ctx, producer: producer}
}

// RelationAction 翻转关注关系
func (service *RelationService) RelationAction(followerId, followeeId int64) (isFollowing bool, err error) {
	if followerId == followeeId {
		return false, errno.SelfFollowErr
	}

	isFollowing, err = db.ToggleFollow(service.ctx, followerId, followeeId)
	if err != nil {
		hlog.CtxErrorf(service.ctx, "Failed to toggle follow: %v", err)
		return false, err
	}

	if isFollowing {
		service.sendFollowNotification(followerId, followeeId)
	}
	return isFollowing, nil
}

func (service *RelationService) sendFollowNotification(fromUserId, toUserId int64) {
	if service.producer == nil {
		return
	}
	event := &mq.NotificationEvent{
		UserID:           toUserId,
		FromUserID:       fromUserId,
		NotificationType: "follow",
		TargetID:         fromUserId,
		Timestamp:        time.Now().Unix(),
		EventID:          uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(service.ctx, event); err != nil {
		hlog.Errorf("Failed to publish notification event: %v", err)
	}
}
