package db

import (
	"context"
	"time"

	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	return DB.WithContext(ctx).Create(video).Error
}

// FeedList 按创建时间倒序分页获取视频流
func FeedList(ctx context.Context, pageNum, pageSize int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, pageSize)
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Order("created_at Desc").
		Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// VideoListByUser 获取用户发布的视频
func VideoListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	videos := make([]*model.Video, 0, pageSize)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).
		Order("created_at Desc").
		Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&videos).Error; err != nil {
		return nil, count, err
	}
	return videos, count, nil
}

// IncrVideoShareCount 分享计数为无条件累加 不做成员去重
// 同一事务内追加一条分享流水
func IncrVideoShareCount(ctx context.Context, userId, videoId int64) (int64, error) {
	var shareCount int64
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("video_id = ?", videoId).First(&video).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.VideoNotFoundErr
			}
			return err
		}
		if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
			Update("share_count", gorm.Expr("share_count + 1")).Error; err != nil {
			return err
		}
		share := &model.VideoShare{
			VideoShareId: utils.GenId(),
			UserId:       userId,
			VideoId:      videoId,
			CreatedAt:    time.Now().Format(constants.DataFormate),
		}
		if err := tx.Create(share).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).Where("video_id = ?", videoId).
			Select("share_count").Scan(&shareCount).Error
	})
	if err != nil {
		return 0, err
	}
	return shareCount, nil
}
