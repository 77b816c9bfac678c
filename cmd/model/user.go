package model

type User struct {
	UserId         int64  `json:"user_id" gorm:"primaryKey"`
	UserName       string `json:"user_name" gorm:"uniqueIndex;size:64"`
	DisplayName    string `json:"display_name" gorm:"size:64"`
	Password       string `json:"-"`
	AvatarUrl      string `json:"avatar_url"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// UserBrief 嵌入视频流和关注列表的作者卡片
// 不带关注/粉丝计数 计数只在主页接口返回 避免缓存命中时展示过期计数
type UserBrief struct {
	UserId      int64  `json:"user_id"`
	UserName    string `json:"user_name"`
	DisplayName string `json:"display_name"`
	AvatarUrl   string `json:"avatar_url"`
}

func (u *User) Brief() *UserBrief {
	return &UserBrief{
		UserId:      u.UserId,
		UserName:    u.UserName,
		DisplayName: u.DisplayName,
		AvatarUrl:   u.AvatarUrl,
	}
}
