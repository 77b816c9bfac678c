package jwt

import (
	"context"
	"strconv"
	"time"

	"ShortVid.com/config"
	"ShortVid.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	hjwt "github.com/hertz-contrib/jwt"
)

// IdentityKey JWT载荷中携带用户ID的键名
const IdentityKey = "user_id"

// ContextLoginUserKey 登录处理器向Authenticator传递已校验用户ID的上下文键
const ContextLoginUserKey = "login_user_id"

var (
	AccessTokenJwtMiddleware  *hjwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *hjwt.HertzJWTMiddleware
)

// AccessTokenJwtInit 初始化access-token中间件
func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = hjwt.New(&hjwt.HertzJWTMiddleware{
		Realm:         "shortvid",
		Key:           []byte(config.ConfigInfo.Jwt.AccessSecret),
		Timeout:       time.Hour,
		MaxRefresh:    time.Hour,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc:   payloadFunc,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hjwt.ExtractClaims(ctx, c)
			return claims[IdentityKey]
		},
		Authenticator: authenticator,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Access-Token", token)
		},
		Unauthorized: unauthorized,
	})
	if err != nil {
		panic(err)
	}
}

// RefreshTokenJwtInit 初始化refresh-token中间件
func RefreshTokenJwtInit() {
	var err error
	RefreshTokenJwtMiddleware, err = hjwt.New(&hjwt.HertzJWTMiddleware{
		Realm:         "shortvid-refresh",
		Key:           []byte(config.ConfigInfo.Jwt.RefreshSecret),
		Timeout:       7 * 24 * time.Hour,
		MaxRefresh:    7 * 24 * time.Hour,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Refresh-Token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc:   payloadFunc,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hjwt.ExtractClaims(ctx, c)
			return claims[IdentityKey]
		},
		Authenticator: authenticator,
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.Set("Refresh-Token", token)
		},
		Unauthorized: unauthorized,
	})
	if err != nil {
		panic(err)
	}
}

// payloadFunc 载荷里的用户ID一律存字符串
// json解码会把数字还原成float64 雪花ID超出其53位精度 低位会被抹掉
func payloadFunc(data interface{}) hjwt.MapClaims {
	if id, ok := data.(int64); ok {
		return hjwt.MapClaims{IdentityKey: strconv.FormatInt(id, 10)}
	}
	return hjwt.MapClaims{IdentityKey: data}
}

// authenticator 登录处理器先行校验用户名密码 这里只负责取出已校验的用户ID
func authenticator(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	v, exists := c.Get(ContextLoginUserKey)
	if !exists {
		return nil, hjwt.ErrFailedAuthentication
	}
	return v, nil
}

func unauthorized(ctx context.Context, c *app.RequestContext, code int, message string) {
	c.JSON(consts.StatusUnauthorized, map[string]interface{}{
		"code":    errno.AuthorizationFailedErrCode,
		"message": message,
	})
}

// IsAccessTokenAvailable 校验access-token是否有效 成功时将载荷写入请求上下文
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return isTokenAvailable(ctx, c, AccessTokenJwtMiddleware)
}

// IsRefreshTokenAvailable 校验refresh-token是否有效
func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return isTokenAvailable(ctx, c, RefreshTokenJwtMiddleware)
}

func isTokenAvailable(ctx context.Context, c *app.RequestContext, mw *hjwt.HertzJWTMiddleware) bool {
	claims, err := mw.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) < mw.TimeFunc().Unix() {
		return false
	}
	// ExtractClaims从这个键读取载荷
	c.Set("JWT_PAYLOAD", claims)
	return true
}

// GenerateAccessToken 凭refresh-token换发新的access-token
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to parse refresh token: %v", err)
		return
	}
	identity := claims[IdentityKey]
	tokenString, _, err := AccessTokenJwtMiddleware.TokenGenerator(identity)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to generate access token: %v", err)
		return
	}
	c.Header("New-Access-Token", tokenString)
	c.Set("JWT_PAYLOAD", hjwt.MapClaims{
		IdentityKey: identity,
		"exp":       float64(AccessTokenJwtMiddleware.TimeFunc().Add(AccessTokenJwtMiddleware.Timeout).Unix()),
	})
}

// ConvertJWTPayloadToString 从请求上下文中取出JWT载荷里的用户标识
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	claims := hjwt.ExtractClaims(ctx, c)
	v, ok := claims[IdentityKey]
	if !ok || v == nil {
		return nil, errno.AuthorizationFailedErr
	}
	return v, nil
}
