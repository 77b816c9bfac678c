package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	AuthorizationFailedErrCode = 10003
	TokenInvailedErrCode       = 10004
	UserAlreadyExistErrCode    = 10005
	UserNotFoundErrCode        = 10006
	VideoNotFoundErrCode       = 10007
	CommentEmptyErrCode        = 10008
	SelfFollowErrCode          = 10009
	ConflictErrCode            = 10010
	RequestErrCode             = 10011
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to handle this request")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "Authorization failed")
	TokenInvailedErr       = NewErrNo(TokenInvailedErrCode, "Token is invalid")
	UserAlreadyExistErr    = NewErrNo(UserAlreadyExistErrCode, "User already exists")
	UserNotFoundErr        = NewErrNo(UserNotFoundErrCode, "User not found")
	VideoNotFoundErr       = NewErrNo(VideoNotFoundErrCode, "Video not found")
	CommentEmptyErr        = NewErrNo(CommentEmptyErrCode, "Comment content is empty")
	SelfFollowErr          = NewErrNo(SelfFollowErrCode, "Cannot follow yourself")
	ConflictErr            = NewErrNo(ConflictErrCode, "Concurrent update conflict, please retry")
	RequestErr             = NewErrNo(RequestErrCode, "Wrong request has been given")
)

// ConvertErr convert error to ErrNo
// in default case, the ErrNo is ServiceErr
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
