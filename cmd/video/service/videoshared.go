package service

import (
	"context"

	"ShortVid.com/cmd/video/dal/db"
)

type ShareService struct {
	ctx context.Context
}

func NewShareService(ctx context.Context) *ShareService {
	return &ShareService{ctx: ctx}
}

// ShareVideo 记录一次分享 重复分享不去重
func (v *ShareService) ShareVideo(userId, videoId int64) (int64, error) {
	return db.IncrVideoShareCount(v.ctx, userId, videoId)
}
