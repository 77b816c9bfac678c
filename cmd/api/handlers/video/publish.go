package handlers

import (
	"context"

	"ShortVid.com/cmd/video/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishParam
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

	fileHeader, err := c.FormFile("data")
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer file.Close()

	publishParam := &service.PublishParam{
		UserId:      userId,
		Title:       param.Title,
		Description: param.Description,
		Data:        file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}

	// 封面可选
	if coverHeader, err := c.FormFile("cover"); err == nil {
		cover, err := coverHeader.Open()
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		defer cover.Close()
		publishParam.Cover = cover
		publishParam.CoverSize = coverHeader.Size
		publishParam.CoverContentType = coverHeader.Header.Get("Content-Type")
	}

	video, err := service.NewVideoPublishService(ctx).PublishVideo(publishParam)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
