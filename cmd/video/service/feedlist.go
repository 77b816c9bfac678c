package service

import (
	"context"

	interactiondb "ShortVid.com/cmd/interaction/dal/db"
	"ShortVid.com/cmd/model"
	usersvc "ShortVid.com/cmd/user/service"
	"ShortVid.com/cmd/video/dal/db"
	"ShortVid.com/pkg/constants"
	"github.com/pkg/errors"
)

type FeedListService struct {
	ctx context.Context
}

func NewFeedListService(ctx context.Context) *FeedListService {
	return &FeedListService{ctx: ctx}
}

// VideoItem 视频流条目 计数直接取自videos行
type VideoItem struct {
	*model.Video
	Author       *model.UserBrief `json:"author"`
	IsLiked      bool             `json:"is_liked"`
	IsBookmarked bool             `json:"is_bookmarked"`
}

// FeedList 按创建时间倒序返回视频流 viewerId为0时点赞收藏状态均为false
func (v *FeedListService) FeedList(viewerId, pageNum, pageSize int64) ([]*VideoItem, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)
	videos, err := db.FeedList(v.ctx, pageNum, pageSize)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.FeedList failed")
	}
	return v.assemble(videos, viewerId)
}

// VideoListByUser 返回指定用户发布的视频
func (v *FeedListService) VideoListByUser(userId, viewerId, pageNum, pageSize int64) ([]*VideoItem, int64, error) {
	pageNum, pageSize = normalizePage(pageNum, pageSize)
	videos, total, err := db.VideoListByUser(v.ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "dao.VideoListByUser failed")
	}
	items, err := v.assemble(videos, viewerId)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (v *FeedListService) assemble(videos []*model.Video, viewerId int64) ([]*VideoItem, error) {
	if len(videos) == 0 {
		return []*VideoItem{}, nil
	}

	videoIds := make([]int64, 0, len(videos))
	authorIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		videoIds = append(videoIds, video.VideoId)
		authorIds = append(authorIds, video.UserId)
	}

	var likedSet, bookmarkedSet map[int64]bool
	var err error
	if viewerId > 0 {
		likedSet, err = interactiondb.GetLikedVideoIds(v.ctx, viewerId, videoIds)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetLikedVideoIds failed")
		}
		bookmarkedSet, err = interactiondb.GetBookmarkedVideoIds(v.ctx, viewerId, videoIds)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetBookmarkedVideoIds failed")
		}
	}

	authors, err := usersvc.NewGetUserInfoService(v.ctx).GetUsersByIds(authorIds)
	if err != nil {
		return nil, err
	}

	items := make([]*VideoItem, 0, len(videos))
	for _, video := range videos {
		items = append(items, &VideoItem{
			Video:        video,
			Author:       authors[video.UserId],
			IsLiked:      likedSet[video.VideoId],
			IsBookmarked: bookmarkedSet[video.VideoId],
		})
	}
	return items, nil
}

func normalizePage(pageNum, pageSize int64) (int64, int64) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultLimit
	}
	if pageSize > constants.MaxLimit {
		pageSize = constants.MaxLimit
	}
	return pageNum, pageSize
}
