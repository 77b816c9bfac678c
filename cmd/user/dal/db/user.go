package db

import (
	"context"

	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	return DB.WithContext(ctx).Create(user).Error
}

// CheckUserExist 用来检查给定的user_name是否已被注册
func CheckUserExist(ctx context.Context, userName string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", userName).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func QueryUserByName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", userName).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.UserNotFoundErr
		}
		return nil, err
	}
	return &user, nil
}

func GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.UserNotFoundErr
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByIds 批量获取用户信息 用于视频流的作者信息填充
func GetUserByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(userIds))
	if len(userIds) == 0 {
		return users, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id In (?)", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
