package redis

import (
	"context"

	"ShortVid.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var redisDBUserInfo *redis.Client

func Load() {
	redisDBUserInfo = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	if _, err := redisDBUserInfo.Ping(context.Background()).Result(); err != nil {
		hlog.Info("redisDBUserInfo", err)
	}
}
