package handlers

import (
	"context"

	"ShortVid.com/cmd/interaction/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

type CommentListData struct {
	Comments interface{} `json:"comments"`
	Total    int64       `json:"total"`
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	var param ListCommentParam
	if err := c.Bind(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	comments, total, err := service.NewCommentService(ctx, nil).ListComments(videoId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, &CommentListData{Comments: comments, Total: total})
}
