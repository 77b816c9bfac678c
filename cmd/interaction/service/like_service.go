package service

import (
	"context"
	"time"

	"ShortVid.com/cmd/interaction/dal/db"
	"ShortVid.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// LikeActionService 点赞服务
type LikeActionService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewLikeActionService(ctx context.Context, producer *mq.Producer) *LikeActionService {
	return &LikeActionService{ctx: ctx, producer: producer}
}

// LikeAction 翻转点赞状态 返回最新计数与当前状态
func (service *LikeActionService) LikeAction(userId, videoId int64) (likeCount int64, isLiked bool, err error) {
	res, err := db.ToggleVideoLike(service.ctx, userId, videoId)
	if err != nil {
		hlog.CtxErrorf(service.ctx, "Failed to toggle video like: %v", err)
		return 0, false, err
	}

	// 点赞成功才通知作者 取消点赞不通知
	if res.Active {
		service.sendLikeNotification(userId, videoId)
	}

	return res.Count, res.Active, nil
}

func (service *LikeActionService) sendLikeNotification(fromUserId, videoId int64) {
	if service.producer == nil {
		return
	}
	video, err := db.GetVideoInfo(service.ctx, videoId)
	if err != nil {
		hlog.Errorf("Failed to get video info for notification: %v", err)
		return
	}
	if video.UserId == fromUserId {
		return
	}

	event := &mq.NotificationEvent{
		UserID:           video.UserId,
		FromUserID:       fromUserId,
		NotificationType: "like",
		TargetID:         videoId,
		Timestamp:        time.Now().Unix(),
		EventID:          uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(service.ctx, event); err != nil {
		hlog.Errorf("Failed to publish notification event: %v", err)
	}
}
