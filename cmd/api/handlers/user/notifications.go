package handlers

import (
	"context"

	"ShortVid.com/cmd/notification/dal/db"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func NotificationList(ctx context.Context, c *app.RequestContext) {
	var param NotificationListParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)

	if param.PageNum <= 0 {
		param.PageNum = constants.DefaultPageNum
	}
	if param.PageSize <= 0 {
		param.PageSize = constants.DefaultLimit
	}
	if param.PageSize > constants.MaxLimit {
		param.PageSize = constants.MaxLimit
	}

	notifications, err := db.GetNotificationsByUser(ctx, userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, notifications)
}
