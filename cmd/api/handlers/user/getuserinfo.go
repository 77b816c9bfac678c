package handlers

import (
	"context"

	"ShortVid.com/cmd/user/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func GetUserInfo(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	// 可选鉴权 匿名请求viewerId为0
	var viewerId int64
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		viewerId = utils.Transfer(v)
	}

	profile, err := service.NewGetUserInfoService(ctx).GetUserInfo(userId, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}
