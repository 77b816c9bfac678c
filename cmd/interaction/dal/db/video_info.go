package db

import (
	"context"

	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetVideoInfo 获取视频信息 用于通知与存在性校验
func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.VideoNotFoundErr
		}
		return nil, err
	}
	return &video, nil
}
