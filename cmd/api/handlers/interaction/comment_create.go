package handlers

import (
	"context"

	"ShortVid.com/cmd/interaction/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/mq"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	var param CreateCommentParam
	if err := c.Bind(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)

	comment, err := service.NewCommentService(ctx, mq.GetProducer()).CreateComment(userId, videoId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}
