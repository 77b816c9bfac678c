package model

// VideoLike 点赞成员表 likes计数即该表基数的缓存
// (user_id, video_id) 复合唯一键，避免重复点赞
type VideoLike struct {
	VideoLikeId int64  `json:"video_like_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"uniqueIndex:idx_like_user_video"`
	VideoId     int64  `json:"video_id" gorm:"uniqueIndex:idx_like_user_video;index"`
	CreatedAt   string `json:"created_at"`
}

func (VideoLike) TableName() string { return "video_likes" }

// VideoBookmark 收藏成员表 与点赞同构
type VideoBookmark struct {
	VideoBookmarkId int64  `json:"video_bookmark_id" gorm:"primaryKey"`
	UserId          int64  `json:"user_id" gorm:"uniqueIndex:idx_bookmark_user_video"`
	VideoId         int64  `json:"video_id" gorm:"uniqueIndex:idx_bookmark_user_video;index"`
	CreatedAt       string `json:"created_at"`
}

func (VideoBookmark) TableName() string { return "video_bookmarks" }

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey"`
	UserId    int64  `json:"user_id" gorm:"index"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
