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

type PublishParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type FeedListParam struct {
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}
