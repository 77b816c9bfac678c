package service

import (
	"context"
	"time"

	"ShortVid.com/cmd/model"
	"ShortVid.com/cmd/user/dal/db"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/utils"
	"github.com/pkg/errors"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

// CreateUser 注册用户 用户名唯一 密码bcrypt落库
func (v *CreateUserService) CreateUser(userName, displayName, password string) (*model.User, error) {
	if userName == "" || password == "" {
		return nil, errno.ParamErr
	}

	exist, err := db.CheckUserExist(v.ctx, userName)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckUserExist failed")
	}
	if exist {
		return nil, errno.UserAlreadyExistErr
	}

	passWord, err := utils.Crypt(password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	if displayName == "" {
		displayName = userName
	}
	user := &model.User{
		UserId:      utils.GenId(),
		UserName:    userName,
		DisplayName: displayName,
		Password:    passWord,
		CreatedAt:   time.Now().Format(constants.DataFormate),
		UpdatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateUser(v.ctx, user); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateUser failed")
	}
	return user, nil
}
