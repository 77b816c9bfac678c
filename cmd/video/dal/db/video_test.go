package db

import (
	"context"
	"os"
	"testing"
	"time"

	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupTestDB 集成测试需要真实的MySQL 通过SHORTVID_TEST_DSN指定
func setupTestDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	dsn := os.Getenv("SHORTVID_TEST_DSN")
	if dsn == "" {
		t.Skip("SHORTVID_TEST_DSN not set, skipping database integration test")
	}
	testDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := testDB.AutoMigrate(&model.Video{}, &model.VideoShare{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}
	DB = testDB
}

func seedVideo(t *testing.T, ctx context.Context) *model.Video {
	t.Helper()
	video := &model.Video{
		VideoId:   utils.GenId(),
		UserId:    utils.GenId(),
		Title:     "share test",
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
	t.Cleanup(func() {
		DB.Where("video_id = ?", video.VideoId).Delete(&model.Video{})
		DB.Where("video_id = ?", video.VideoId).Delete(&model.VideoShare{})
	})
	return video
}

// TestIncrVideoShareCount 分享不是toggle 同一用户重复分享每次都计数
func TestIncrVideoShareCount(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	video := seedVideo(t, ctx)
	userId := utils.GenId()

	count, err := IncrVideoShareCount(ctx, userId, video.VideoId)
	if err != nil {
		t.Fatalf("first share failed: %v", err)
	}
	if count != 1 {
		t.Errorf("share_count = %d, want 1", count)
	}

	count, err = IncrVideoShareCount(ctx, userId, video.VideoId)
	if err != nil {
		t.Fatalf("second share failed: %v", err)
	}
	if count != 2 {
		t.Errorf("repeat share by same user should still count, got %d", count)
	}

	var rows int64
	if err := DB.WithContext(ctx).Model(&model.VideoShare{}).
		Where("video_id = ?", video.VideoId).Count(&rows).Error; err != nil {
		t.Fatalf("failed to count share rows: %v", err)
	}
	if rows != 2 {
		t.Errorf("share event rows = %d, want 2", rows)
	}
}

func TestIncrVideoShareCountNotFound(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := IncrVideoShareCount(ctx, utils.GenId(), -1)
	if errno.ConvertErr(err).ErrCode != errno.VideoNotFoundErrCode {
		t.Errorf("expected VideoNotFoundErr, got %v", err)
	}
}

// TestFeedListOrder 视频流按创建时间倒序
func TestFeedListOrder(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	older := &model.Video{
		VideoId:   utils.GenId(),
		UserId:    utils.GenId(),
		Title:     "older",
		CreatedAt: time.Now().Add(-time.Hour).Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	newer := &model.Video{
		VideoId:   utils.GenId(),
		UserId:    older.UserId,
		Title:     "newer",
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	for _, v := range []*model.Video{older, newer} {
		video := v
		if err := DB.WithContext(ctx).Create(video).Error; err != nil {
			t.Fatalf("failed to seed video: %v", err)
		}
		t.Cleanup(func() {
			DB.Where("video_id = ?", video.VideoId).Delete(&model.Video{})
		})
	}

	videos, err := FeedList(ctx, 1, 50)
	if err != nil {
		t.Fatalf("FeedList failed: %v", err)
	}
	newerIdx, olderIdx := -1, -1
	for i, v := range videos {
		switch v.VideoId {
		case newer.VideoId:
			newerIdx = i
		case older.VideoId:
			olderIdx = i
		}
	}
	if newerIdx == -1 || olderIdx == -1 {
		t.Fatal("seeded videos missing from feed")
	}
	if newerIdx > olderIdx {
		t.Errorf("feed should be newest first: newer at %d, older at %d", newerIdx, olderIdx)
	}
}
