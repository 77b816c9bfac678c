package model

type Video struct {
	VideoId       int64  `json:"video_id" gorm:"primaryKey"`
	UserId        int64  `json:"user_id" gorm:"index"`
	VideoUrl      string `json:"video_url"`
	CoverUrl      string `json:"cover_url"`
	Title         string `json:"title" gorm:"size:255"`
	Description   string `json:"description"`
	LikeCount     int64  `json:"like_count"`
	BookmarkCount int64  `json:"bookmark_count"`
	CommentCount  int64  `json:"comment_count"`
	ShareCount    int64  `json:"share_count"`
	CreatedAt     string `json:"created_at" gorm:"index"`
	UpdatedAt     string `json:"updated_at"`
}

func (Video) TableName() string { return "videos" }

// 分享行为的流水记录 分享数不以此表推导 详见视频服务
type VideoShare struct {
	VideoShareId int64  `json:"video_share_id" gorm:"primaryKey"`
	UserId       int64  `json:"user_id" gorm:"index"`
	VideoId      int64  `json:"video_id" gorm:"index"`
	CreatedAt    string `json:"created_at"`
}

func (VideoShare) TableName() string { return "video_shares" }
