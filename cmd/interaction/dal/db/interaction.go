package db

import (
	"context"
	"time"

	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/utils"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleResult 一次toggle后的最新状态
type ToggleResult struct {
	Count  int64
	Active bool
}

// ToggleVideoLike 翻转点赞状态 成员表与计数在同一事务内落库
// 读者看到的like_count永远等于成员表基数
func ToggleVideoLike(ctx context.Context, userId, videoId int64) (*ToggleResult, error) {
	res := &ToggleResult{}
	err := withConflictRetry(func() error {
		return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// 锁定视频行 串行化同一视频上的并发toggle
			var video model.Video
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("video_id = ?", videoId).First(&video).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errno.VideoNotFoundErr
				}
				return err
			}

			var count int64
			if err := tx.Model(&model.VideoLike{}).
				Where("video_id = ? And user_id = ?", videoId, userId).Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				if err := tx.Where("video_id = ? And user_id = ?", videoId, userId).
					Delete(&model.VideoLike{}).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
					Update("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error; err != nil {
					return err
				}
				res.Active = false
			} else {
				like := &model.VideoLike{
					VideoLikeId: utils.GenId(),
					UserId:      userId,
					VideoId:     videoId,
					CreatedAt:   time.Now().Format(constants.DataFormate),
				}
				if err := tx.Create(like).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
					Update("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
					return err
				}
				res.Active = true
			}

			return tx.Model(&model.Video{}).Where("video_id = ?", videoId).
				Select("like_count").Scan(&res.Count).Error
		})
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ToggleVideoBookmark 翻转收藏状态 与点赞同构
func ToggleVideoBookmark(ctx context.Context, userId, videoId int64) (*ToggleResult, error) {
	res := &ToggleResult{}
	err := withConflictRetry(func() error {
		return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var video model.Video
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("video_id = ?", videoId).First(&video).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errno.VideoNotFoundErr
				}
				return err
			}

			var count int64
			if err := tx.Model(&model.VideoBookmark{}).
				Where("video_id = ? And user_id = ?", videoId, userId).Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				if err := tx.Where("video_id = ? And user_id = ?", videoId, userId).
					Delete(&model.VideoBookmark{}).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
					Update("bookmark_count", gorm.Expr("GREATEST(bookmark_count - 1, 0)")).Error; err != nil {
					return err
				}
				res.Active = false
			} else {
				bookmark := &model.VideoBookmark{
					VideoBookmarkId: utils.GenId(),
					UserId:          userId,
					VideoId:         videoId,
					CreatedAt:       time.Now().Format(constants.DataFormate),
				}
				if err := tx.Create(bookmark).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.Video{}).Where("video_id = ?", videoId).
					Update("bookmark_count", gorm.Expr("bookmark_count + 1")).Error; err != nil {
					return err
				}
				res.Active = true
			}

			return tx.Model(&model.Video{}).Where("video_id = ?", videoId).
				Select("bookmark_count").Scan(&res.Count).Error
		})
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetLikedVideoIds 批量查询用户对一组视频的点赞成员关系
func GetLikedVideoIds(ctx context.Context, userId int64, videoIds []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(videoIds))
	if userId <= 0 || len(videoIds) == 0 {
		return liked, nil
	}
	list := make([]int64, 0, len(videoIds))
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("user_id = ? And video_id In (?)", userId, videoIds).
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	for _, vid := range list {
		liked[vid] = true
	}
	return liked, nil
}

// GetBookmarkedVideoIds 批量查询用户对一组视频的收藏成员关系
func GetBookmarkedVideoIds(ctx context.Context, userId int64, videoIds []int64) (map[int64]bool, error) {
	bookmarked := make(map[int64]bool, len(videoIds))
	if userId <= 0 || len(videoIds) == 0 {
		return bookmarked, nil
	}
	list := make([]int64, 0, len(videoIds))
	if err := DB.WithContext(ctx).Model(&model.VideoBookmark{}).
		Where("user_id = ? And video_id In (?)", userId, videoIds).
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	for _, vid := range list {
		bookmarked[vid] = true
	}
	return bookmarked, nil
}

// GetVideoLikeCount 成员表基数 用于校验计数一致性
func GetVideoLikeCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetVideoBookmarkCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.VideoBookmark{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RecountVideoEngagement 以成员表为准重算计数 供部分失败后的修复使用
func RecountVideoEngagement(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var video model.Video
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("video_id = ?", videoId).First(&video).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.VideoNotFoundErr
			}
			return err
		}
		var likeCount, bookmarkCount int64
		if err := tx.Model(&model.VideoLike{}).Where("video_id = ?", videoId).Count(&likeCount).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.VideoBookmark{}).Where("video_id = ?", videoId).Count(&bookmarkCount).Error; err != nil {
			return err
		}
		return tx.Model(&model.Video{}).Where("video_id = ?", videoId).
			Updates(map[string]interface{}{
				"like_count":     likeCount,
				"bookmark_count": bookmarkCount,
			}).Error
	})
}

// withConflictRetry InnoDB死锁或锁等待超时后重试一次
func withConflictRetry(fn func() error) error {
	var err error
	for i := 0; i <= constants.ToggleMaxRetry; i++ {
		err = fn()
		if err == nil || !isRetryableMysqlErr(err) {
			return err
		}
	}
	return errno.ConflictErr
}

func isRetryableMysqlErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1213: deadlock, 1205: lock wait timeout
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
