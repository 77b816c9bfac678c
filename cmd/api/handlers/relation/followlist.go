package handlers

import (
	"context"

	"ShortVid.com/cmd/model"
	"ShortVid.com/cmd/relation/service"
	usersvc "ShortVid.com/cmd/user/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func FollowingList(ctx context.Context, c *app.RequestContext) {
	followList(ctx, c, func(svc *service.FollowListService, userId, pageNum, pageSize int64) ([]int64, error) {
		return svc.FollowingList(userId, pageNum, pageSize)
	})
}

func FollowerList(ctx context.Context, c *app.RequestContext) {
	followList(ctx, c, func(svc *service.FollowListService, userId, pageNum, pageSize int64) ([]int64, error) {
		return svc.FollowerList(userId, pageNum, pageSize)
	})
}

func FriendList(ctx context.Context, c *app.RequestContext) {
	followList(ctx, c, func(svc *service.FollowListService, userId, pageNum, pageSize int64) ([]int64, error) {
		return svc.FriendList(userId, pageNum, pageSize)
	})
}

func followList(ctx context.Context, c *app.RequestContext,
	list func(svc *service.FollowListService, userId, pageNum, pageSize int64) ([]int64, error)) {
	userId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	var param FollowListParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	userIds, err := list(service.NewFollowListService(ctx), userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	// 按台账顺序补全作者卡片
	users, err := usersvc.NewGetUserInfoService(ctx).GetUsersByIds(userIds)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	ordered := make([]*model.UserBrief, 0, len(userIds))
	for _, uid := range userIds {
		if user, ok := users[uid]; ok {
			ordered = append(ordered, user)
		}
	}
	SendResponse(c, errno.Success, ordered)
}
