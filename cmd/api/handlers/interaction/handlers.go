package handlers

import (
	"ShortVid.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type CreateCommentParam struct {
	Content string `form:"content" json:"content"`
}

type ListCommentParam struct {
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}

// ToggleData 点赞与收藏切换后的最新状态
type ToggleData struct {
	Count  int64 `json:"count"`
	Active bool  `json:"active"`
}
