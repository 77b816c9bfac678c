package handlers

import (
	"context"

	"ShortVid.com/cmd/interaction/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/mq"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func LikeAction(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := utils.Transfer(v)

	likeCount, isLiked, err := service.NewLikeActionService(ctx, mq.GetProducer()).LikeAction(userId, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, &ToggleData{Count: likeCount, Active: isLiked})
}
