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

// ToggleFollow 翻转关注关系 账本与双方计数在同一事务内落库
// follows表是权威账本 关注/粉丝列表与计数均由它推导
func ToggleFollow(ctx context.Context, followerId, followeeId int64) (isFollowing bool, err error) {
	err = withConflictRetry(func() error {
		return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			// 锁定被关注者行 校验存在性并串行化计数更新
			var followee model.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ?", followeeId).First(&followee).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errno.UserNotFoundErr
				}
				return err
			}

			var record model.Follow
			err := tx.Where("follower_id = ? And followee_id = ?", followerId, followeeId).
				First(&record).Error
			switch {
			case err == nil:
				// 已关注 删除账本记录并回退双方计数
				if err := tx.Where("follower_id = ? And followee_id = ?", followerId, followeeId).
					Delete(&model.Follow{}).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.User{}).Where("user_id = ?", followerId).
					Update("following_count", gorm.Expr("GREATEST(following_count - 1, 0)")).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.User{}).Where("user_id = ?", followeeId).
					Update("follower_count", gorm.Expr("GREATEST(follower_count - 1, 0)")).Error; err != nil {
					return err
				}
				isFollowing = false
			case errors.Is(err, gorm.ErrRecordNotFound):
				// 未关注 创建账本记录并累加双方计数
				// 复合唯一键兜底 并发下重复插入会失败回滚
				follow := &model.Follow{
					FollowId:   utils.GenId(),
					FollowerId: followerId,
					FolloweeId: followeeId,
					CreatedAt:  time.Now().Format(constants.DataFormate),
				}
				if err := tx.Create(follow).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.User{}).Where("user_id = ?", followerId).
					Update("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
					return err
				}
				if err := tx.Model(&model.User{}).Where("user_id = ?", followeeId).
					Update("follower_count", gorm.Expr("follower_count + 1")).Error; err != nil {
					return err
				}
				isFollowing = true
			default:
				return err
			}
			return nil
		})
	})
	if err != nil {
		return false, err
	}
	return isFollowing, nil
}

func IsRelationExist(ctx context.Context, followerId, followeeId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? And followee_id = ?", followerId, followeeId).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowingListPaged 获取用户关注的所有用户
func GetFollowingListPaged(ctx context.Context, userId, pageNum, pageSize int64) ([]int64, error) {
	list := make([]int64, 0, pageSize)
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userId).
		Select("followee_id").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetFollowerListPaged 获取关注这个用户的所有用户（粉丝）
func GetFollowerListPaged(ctx context.Context, userId, pageNum, pageSize int64) ([]int64, error) {
	list := make([]int64, 0, pageSize)
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userId).
		Select("follower_id").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetFriendListPaged 朋友即两个用户互相关注对方
func GetFriendListPaged(ctx context.Context, userId, pageNum, pageSize int64) ([]int64, error) {
	list := make([]int64, 0, pageSize)
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where(`follower_id = ? And followee_id in (
		select follower_id from follows where followee_id = ?)`, userId, userId).
		Select("followee_id").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func GetFollowingCount(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userId).Count(&count).Error; err != nil {
		return -1, err
	}
	return count, nil
}

func GetFollowerCount(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userId).Count(&count).Error; err != nil {
		return -1, err
	}
	return count, nil
}

// withConflictRetry 互关时两个事务以相反顺序锁双方用户行 InnoDB会判死锁杀掉一个
// 死锁或锁等待超时后重试 超出重试预算映射为冲突错误
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

// RecountUserRelations 以账本为准重算用户的关注/粉丝计数
// 供部分失败后的修复使用
func RecountUserRelations(ctx context.Context, userId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userId).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errno.UserNotFoundErr
			}
			return err
		}
		var followingCount, followerCount int64
		if err := tx.Model(&model.Follow{}).Where("follower_id = ?", userId).Count(&followingCount).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Follow{}).Where("followee_id = ?", userId).Count(&followerCount).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("user_id = ?", userId).
			Updates(map[string]interface{}{
				"following_count": followingCount,
				"follower_count":  followerCount,
			}).Error
	})
}
