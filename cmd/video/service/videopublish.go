package service

import (
	"context"
	"io"
	"strconv"
	"time"

	"ShortVid.com/cmd/model"
	"ShortVid.com/cmd/video/dal/db"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/oss"
	"ShortVid.com/pkg/utils"
	"github.com/pkg/errors"
)

type VideoPublishService struct {
	ctx context.Context
}

func NewVideoPublishService(ctx context.Context) *VideoPublishService {
	return &VideoPublishService{ctx: ctx}
}

type PublishParam struct {
	UserId      int64
	Title       string
	Description string
	Data        io.Reader
	Size        int64
	ContentType string

	// 封面可选 未提供时cover_url留空
	Cover            io.Reader
	CoverSize        int64
	CoverContentType string
}

// PublishVideo 上传视频到对象存储并落库
func (v *VideoPublishService) PublishVideo(req *PublishParam) (*model.Video, error) {
	if req.Title == "" || req.Data == nil || req.Size <= 0 {
		return nil, errno.ParamErr
	}

	videoId := utils.GenId()
	videoUrl, err := oss.UploadVideo(v.ctx, req.Data, req.Size, strconv.FormatInt(videoId, 10), req.ContentType)
	if err != nil {
		return nil, errors.WithMessage(err, "oss.UploadVideo failed")
	}

	var coverUrl string
	if req.Cover != nil && req.CoverSize > 0 {
		coverUrl, err = oss.UploadVideoCover(v.ctx, req.Cover, req.CoverSize, strconv.FormatInt(videoId, 10), req.CoverContentType)
		if err != nil {
			return nil, errors.WithMessage(err, "oss.UploadVideoCover failed")
		}
	}

	video := &model.Video{
		VideoId:     videoId,
		UserId:      req.UserId,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now().Format(constants.DataFormate),
		UpdatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.InsertVideo(v.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "dao.InsertVideo failed")
	}
	return video, nil
}
