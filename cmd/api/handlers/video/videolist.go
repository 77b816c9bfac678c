package handlers

import (
	"context"

	"ShortVid.com/cmd/video/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

type VideoListData struct {
	Videos interface{} `json:"videos"`
	Total  int64       `json:"total"`
}

func VideoListByUser(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	var param FeedListParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	var viewerId int64
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		viewerId = utils.Transfer(v)
	}

	items, total, err := service.NewFeedListService(ctx).VideoListByUser(userId, viewerId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, &VideoListData{Videos: items, Total: total})
}
