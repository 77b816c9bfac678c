package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestUserBrief 作者卡片只携带基础资料
// 计数字段不允许出现在卡片里 否则缓存命中的读者会看到过期计数
func TestUserBrief(t *testing.T) {
	user := &User{
		UserId:         881283783612043265,
		UserName:       "alice",
		DisplayName:    "Alice",
		Password:       "hashed",
		AvatarUrl:      "http://minio/avatar/alice.png",
		FollowerCount:  42,
		FollowingCount: 7,
	}

	brief := user.Brief()
	if brief.UserId != user.UserId || brief.UserName != user.UserName ||
		brief.DisplayName != user.DisplayName || brief.AvatarUrl != user.AvatarUrl {
		t.Errorf("brief should carry identity fields, got %+v", brief)
	}

	b, err := json.Marshal(brief)
	if err != nil {
		t.Fatalf("marshal brief failed: %v", err)
	}
	payload := string(b)
	for _, forbidden := range []string{"follower_count", "following_count", "hashed"} {
		if strings.Contains(payload, forbidden) {
			t.Errorf("brief payload must not contain %q: %s", forbidden, payload)
		}
	}
}
