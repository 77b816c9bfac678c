package main

import (
	"context"
	"fmt"

	interactiondb "ShortVid.com/cmd/interaction/dal/db"
	"ShortVid.com/cmd/notification/consumer"
	notificationdb "ShortVid.com/cmd/notification/dal/db"
	relationdb "ShortVid.com/cmd/relation/dal/db"
	userdb "ShortVid.com/cmd/user/dal/db"
	"ShortVid.com/cmd/user/infras/redis"
	videodb "ShortVid.com/cmd/video/dal/db"
	"ShortVid.com/config"
	"ShortVid.com/config/pprof"
	"ShortVid.com/pkg/database"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/mq"
	"ShortVid.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	database.Init()
	interactiondb.Init()
	relationdb.Init()
	userdb.Init()
	videodb.Init()
	notificationdb.Init()
	redis.Load()
	if err := oss.InitMinio(); err != nil {
		hlog.Fatalf("Failed to init minio: %v", err)
	}

	// 通知链路为尽力而为 初始化失败只降级不阻断启动
	rabbitmqURL := fmt.Sprintf("amqp://%s:%s@%s/",
		config.ConfigInfo.RabbitMq.Username, config.ConfigInfo.RabbitMq.Password, config.ConfigInfo.RabbitMq.Addr)
	if err := mq.InitProducer(rabbitmqURL); err != nil {
		hlog.Errorf("Failed to init rabbitmq producer, notifications disabled: %v", err)
	} else {
		c, err := mq.NewConsumer(rabbitmqURL)
		if err != nil {
			hlog.Errorf("Failed to init rabbitmq consumer: %v", err)
		} else if err := c.ConsumeNotificationEvents(context.Background(), consumer.NewNotificationPersister()); err != nil {
			hlog.Errorf("Failed to start notification consumer: %v", err)
		}
	}
}

func main() {
	Init()
	pprof.Load()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(16*1024*1024*1024),
	)

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// 初始化 JWT
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	// 错误处理
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	// 注册路由
	register(r)

	r.Spin()
}
