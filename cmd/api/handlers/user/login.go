package handlers

import (
	"context"

	"ShortVid.com/cmd/model"
	"ShortVid.com/cmd/user/service"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type LoginData struct {
	User         *model.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
}

func LoginUser(ctx context.Context, c *app.RequestContext) {
	var loginVar LoginParam
	if err := c.Bind(&loginVar); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	user, err := service.NewLoginUserService(ctx).LoginUser(loginVar.UserName, loginVar.PassWord)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	// 密码校验通过后再签发双token
	c.Set(jwt.ContextLoginUserKey, user.UserId)
	jwt.AccessTokenJwtMiddleware.LoginHandler(ctx, c)
	jwt.RefreshTokenJwtMiddleware.LoginHandler(ctx, c)

	AccessToken := c.GetString("Access-Token")
	RefreshToken := c.GetString("Refresh-Token")
	SendResponse(c, errno.Success, &LoginData{
		User:         user,
		Token:        AccessToken,
		RefreshToken: RefreshToken,
	})
}
