package handlers

import (
	"context"

	"ShortVid.com/cmd/video/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func FeedList(ctx context.Context, c *app.RequestContext) {
	var param FeedListParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	// 可选鉴权 登录用户才返回点赞收藏状态
	var viewerId int64
	if v, err := jwt.ConvertJWTPayloadToString(ctx, c); err == nil {
		viewerId = utils.Transfer(v)
	}

	items, err := service.NewFeedListService(ctx).FeedList(viewerId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}
