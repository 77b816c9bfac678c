package db

import (
	"context"

	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateComment 评论与父视频计数在同一事务内落库
// 评论不可删除 comment_count只增不减
func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("video_id = ?", comment.VideoId).First(&video).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.VideoNotFoundErr
			}
			return err
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).Where("video_id = ?", comment.VideoId).
			Update("comment_count", gorm.Expr("comment_count + 1")).Error
	})
}

// GetVideoCommentListByPart 获取视频的评论列表 按时间倒序
func GetVideoCommentListByPart(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, error) {
	list := make([]*model.Comment, 0, pageSize)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Order("created_at Desc").
		Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
