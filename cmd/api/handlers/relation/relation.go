package handlers

import (
	"context"

	"ShortVid.com/cmd/relation/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/mq"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

type RelationData struct {
	IsFollowing bool `json:"is_following"`
}

func RelationAction(ctx context.Context, c *app.RequestContext) {
	followeeId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	followerId := utils.Transfer(v)

	isFollowing, err := service.NewRelationService(ctx, mq.GetProducer()).RelationAction(followerId, followeeId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, &RelationData{IsFollowing: isFollowing})
}
