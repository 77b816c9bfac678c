package service

import (
	"context"

	"ShortVid.com/cmd/model"
	"ShortVid.com/cmd/user/dal/db"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/utils"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// LoginUser 校验用户名与密码 失败统一返回鉴权错误
func (v *LoginUserService) LoginUser(userName, password string) (*model.User, error) {
	user, err := db.QueryUserByName(v.ctx, userName)
	if err != nil {
		return nil, errno.AuthorizationFailedErr
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthorizationFailedErr
	}
	return user, nil
}
