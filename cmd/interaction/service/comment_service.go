package service

import (
	"context"
	"strings"
	"time"

	"ShortVid.com/cmd/interaction/dal/db"
	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/mq"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CommentService 评论服务
type CommentService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewCommentService(ctx context.Context, producer *mq.Producer) *CommentService {
	return &CommentService{ctx: ctx, producer: producer}
}

// CreateComment 创建评论 同时递增父视频的评论计数
func (service *CommentService) CreateComment(userId, videoId int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.CommentEmptyErr
	}

	comment := &model.Comment{
		CommentId: utils.GenId(),
		UserId:    userId,
		VideoId:   videoId,
		Content:   content,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}

	service.sendCommentNotification(userId, videoId)
	return comment, nil
}

// ListComments 获取视频评论列表
func (service *CommentService) ListComments(videoId, pageNum, pageSize int64) ([]*model.Comment, int64, error) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxLimit {
		pageSize = constants.DefaultLimit
	}

	if _, err := db.GetVideoInfo(service.ctx, videoId); err != nil {
		return nil, 0, err
	}

	list, err := db.GetVideoCommentListByPart(service.ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.GetVideoCommentListByPart failed")
	}
	total, err := db.GetVideoCommentCount(service.ctx, videoId)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.GetVideoCommentCount failed")
	}
	return list, total, nil
}

func (service *CommentService) sendCommentNotification(fromUserId, videoId int64) {
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
		NotificationType: "comment",
		TargetID:         videoId,
		Timestamp:        time.Now().Unix(),
		EventID:          uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(service.ctx, event); err != nil {
		hlog.Errorf("Failed to publish notification event: %v", err)
	}
}
