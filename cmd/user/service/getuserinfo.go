package service

import (
	"context"

	"ShortVid.com/cmd/model"
	relationdb "ShortVid.com/cmd/relation/dal/db"
	"ShortVid.com/cmd/user/dal/db"
	"ShortVid.com/cmd/user/infras/redis"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

// UserProfile 用户主页信息 含请求者视角的关注状态
type UserProfile struct {
	User        *model.User `json:"user"`
	IsFollowing bool        `json:"is_following"`
}

// GetUserInfo 获取用户信息 viewerId为0表示匿名请求
func (v *GetUserInfoService) GetUserInfo(userId, viewerId int64) (*UserProfile, error) {
	user, err := db.GetUserInfo(v.ctx, userId)
	if err != nil {
		return nil, err
	}
	if err := redis.SetUserBrief(v.ctx, user.Brief()); err != nil {
		hlog.CtxWarnf(v.ctx, "Failed to cache user brief: %v", err)
	}

	profile := &UserProfile{User: user}
	if viewerId > 0 && viewerId != userId {
		isFollowing, err := relationdb.IsRelationExist(v.ctx, viewerId, userId)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.IsRelationExist failed")
		}
		profile.IsFollowing = isFollowing
	}
	return profile, nil
}

// GetUsersByIds 批量获取作者卡片 优先命中缓存 未命中回源并回填
// 卡片不含计数 带计数的资料走GetUserInfo从数据库读取
func (v *GetUserInfoService) GetUsersByIds(userIds []int64) (map[int64]*model.UserBrief, error) {
	result := make(map[int64]*model.UserBrief, len(userIds))
	missed := make([]int64, 0, len(userIds))

	for _, uid := range userIds {
		if _, ok := result[uid]; ok {
			continue
		}
		if brief, ok := redis.GetUserBrief(v.ctx, uid); ok {
			result[uid] = brief
			continue
		}
		missed = append(missed, uid)
	}

	if len(missed) > 0 {
		users, err := db.GetUserByIds(v.ctx, missed)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetUserByIds failed")
		}
		for _, user := range users {
			brief := user.Brief()
			result[user.UserId] = brief
			if err := redis.SetUserBrief(v.ctx, brief); err != nil {
				hlog.CtxWarnf(v.ctx, "Failed to cache user brief: %v", err)
			}
		}
	}
	return result, nil
}
