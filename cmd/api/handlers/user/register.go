package handlers

import (
	"context"

	"ShortVid.com/cmd/user/service"
	"ShortVid.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var registerVar RegisterParam
	if err := c.Bind(&registerVar); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	user, err := service.NewCreateUserService(ctx).CreateUser(registerVar.UserName, registerVar.DisplayName, registerVar.PassWord)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
