package service

import (
	"context"

	"ShortVid.com/cmd/interaction/dal/db"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// BookmarkActionService 收藏服务
type BookmarkActionService struct {
	ctx context.Context
}

func NewBookmarkActionService(ctx context.Context) *BookmarkActionService {
	return &BookmarkActionService{ctx: ctx}
}

// BookmarkAction 翻转收藏状态 返回最新计数与当前状态
func (service *BookmarkActionService) BookmarkAction(userId, videoId int64) (bookmarkCount int64, isBookmarked bool, err error) {
	res, err := db.ToggleVideoBookmark(service.ctx, userId, videoId)
	if err != nil {
		hlog.CtxErrorf(service.ctx, "Failed to toggle video bookmark: %v", err)
		return 0, false, err
	}
	return res.Count, res.Active, nil
}
