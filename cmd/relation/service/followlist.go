package service

import (
	"context"

	"ShortVid.com/cmd/relation/dal/db"
	"ShortVid.com/pkg/constants"
	"github.com/pkg/errors"
)

type FollowListService struct {
	ctx context.Context
}

func NewFollowListService(ctx context.Context) *FollowListService {
	return &FollowListService{ctx: ctx}
}

// FollowingList 用户关注的用户ID列表
func (service *FollowListService) FollowingList(userId, pageNum, pageSize int64) ([]int64, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)
	list, err := db.GetFollowingListPaged(service.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetFollowingListPaged failed")
	}
	return list, nil
}

// FollowerList 用户的粉丝ID列表
func (service *FollowListService) FollowerList(userId, pageNum, pageSize int64) ([]int64, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)
	list, err := db.GetFollowerListPaged(service.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetFollowerListPaged failed")
	}
	return list, nil
}

// FriendList 互相关注的用户ID列表
func (service *FollowListService) FriendList(userId, pageNum, pageSize int64) ([]int64, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)
	list, err := db.GetFriendListPaged(service.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetFriendListPaged failed")
	}
	return list, nil
}

func normalizePage(pageNum, pageSize int64) (int64, int64) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 || pageSize > constants.MaxLimit {
		pageSize = constants.DefaultLimit
	}
	return pageNum, pageSize
}
