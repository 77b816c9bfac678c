package authfunc

import (
	"context"

	handlers "ShortVid.com/cmd/api/handlers/interaction"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"

	"github.com/cloudwego/hertz/pkg/app"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

// DoubleTokenAuthFunc access-token过期时尝试用refresh-token换发
func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) {
				handlers.SendResponse(c, errno.ConvertErr(errno.TokenInvailedErr), nil)
				c.Abort()
				return
			}
			// refresh-token仍有效 换发新的access-token并放行
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}

// OptionalTokenAuthFunc 匿名可访问的路由 有合法token时注入载荷 没有也放行
func OptionalTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwt.IsAccessTokenAvailable(ctx, c)
		c.Next(ctx)
	}
}
