package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ShortVid.com/cmd/model"
	"github.com/redis/go-redis/v9"
)

const (
	// 用户信息缓存 Key：user:info:{user_id}
	userInfoKeyTemplate = "user:info:%d"

	userInfoTTL = 30 * time.Minute
)

// GetUserBrief 读取作者卡片缓存 未命中返回false
// 缓存只存不变的基础资料 关注/粉丝计数不进缓存 始终从数据库读取
func GetUserBrief(ctx context.Context, userId int64) (*model.UserBrief, bool) {
	key := fmt.Sprintf(userInfoKeyTemplate, userId)
	val, err := redisDBUserInfo.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			// 缓存故障时直接回源
			return nil, false
		}
		return nil, false
	}
	var brief model.UserBrief
	if err := json.Unmarshal([]byte(val), &brief); err != nil {
		return nil, false
	}
	return &brief, true
}

func SetUserBrief(ctx context.Context, brief *model.UserBrief) error {
	b, err := json.Marshal(brief)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(userInfoKeyTemplate, brief.UserId)
	return redisDBUserInfo.Set(ctx, key, b, userInfoTTL).Err()
}
