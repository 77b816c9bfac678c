package model

// Follow 关注关系账本 一条记录即一条有向边
// (follower_id, followee_id) 复合唯一键，避免重复关注
type Follow struct {
	FollowId   int64  `json:"follow_id" gorm:"primaryKey"`
	FollowerId int64  `json:"follower_id" gorm:"uniqueIndex:idx_follow_pair;index"`
	FolloweeId int64  `json:"followee_id" gorm:"uniqueIndex:idx_follow_pair;index"`
	CreatedAt  string `json:"created_at"`
}

func (Follow) TableName() string { return "follows" }
