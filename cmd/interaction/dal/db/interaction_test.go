package db

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"ShortVid.com/cmd/model"
	"ShortVid.com/pkg/constants"
	"ShortVid.com/pkg/errno"
	"ShortVid.com/pkg/utils"
	mysql2 "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
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
	if err := testDB.AutoMigrate(&model.Video{}, &model.VideoLike{}, &model.VideoBookmark{}, &model.Comment{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}
	DB = testDB
}

func createTestVideo(t *testing.T, ctx context.Context) *model.Video {
	t.Helper()
	video := &model.Video{
		VideoId:   utils.GenId(),
		UserId:    utils.GenId(),
		Title:     "test video",
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
	t.Cleanup(func() {
		DB.Where("video_id = ?", video.VideoId).Delete(&model.Video{})
		DB.Where("video_id = ?", video.VideoId).Delete(&model.VideoLike{})
		DB.Where("video_id = ?", video.VideoId).Delete(&model.VideoBookmark{})
		DB.Where("video_id = ?", video.VideoId).Delete(&model.Comment{})
	})
	return video
}

// TestToggleVideoLike 点赞两次应回到初始状态 计数与成员表始终一致
func TestToggleVideoLike(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	video := createTestVideo(t, ctx)
	userId := utils.GenId()

	res, err := ToggleVideoLike(ctx, userId, video.VideoId)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !res.Active || res.Count != 1 {
		t.Errorf("after first toggle: want active=true count=1, got active=%v count=%d", res.Active, res.Count)
	}

	// 重复点赞必须是无操作翻转 不会重复计数
	res, err = ToggleVideoLike(ctx, userId, video.VideoId)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if res.Active || res.Count != 0 {
		t.Errorf("after second toggle: want active=false count=0, got active=%v count=%d", res.Active, res.Count)
	}

	cardinality, err := GetVideoLikeCount(ctx, video.VideoId)
	if err != nil {
		t.Fatalf("GetVideoLikeCount failed: %v", err)
	}
	if cardinality != 0 {
		t.Errorf("membership rows should be gone, got %d", cardinality)
	}
}

// TestToggleVideoLikeConcurrent 不同用户并发点赞 计数必须收敛到成员数
func TestToggleVideoLikeConcurrent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	video := createTestVideo(t, ctx)

	const actors = 10
	var wg sync.WaitGroup
	for i := 0; i < actors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ToggleVideoLike(ctx, utils.GenId(), video.VideoId); err != nil {
				t.Errorf("concurrent toggle failed: %v", err)
			}
		}()
	}
	wg.Wait()

	var got model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", video.VideoId).First(&got).Error; err != nil {
		t.Fatalf("failed to reload video: %v", err)
	}
	cardinality, err := GetVideoLikeCount(ctx, video.VideoId)
	if err != nil {
		t.Fatalf("GetVideoLikeCount failed: %v", err)
	}
	if got.LikeCount != int64(actors) {
		t.Errorf("like_count = %d, want %d", got.LikeCount, actors)
	}
	if got.LikeCount != cardinality {
		t.Errorf("like_count %d diverged from membership cardinality %d", got.LikeCount, cardinality)
	}
}

// TestToggleIndependence 点赞和收藏互不影响
func TestToggleIndependence(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	video := createTestVideo(t, ctx)
	userId := utils.GenId()

	if _, err := ToggleVideoLike(ctx, userId, video.VideoId); err != nil {
		t.Fatalf("like toggle failed: %v", err)
	}
	res, err := ToggleVideoBookmark(ctx, userId, video.VideoId)
	if err != nil {
		t.Fatalf("bookmark toggle failed: %v", err)
	}
	if !res.Active || res.Count != 1 {
		t.Errorf("bookmark toggle: want active=true count=1, got active=%v count=%d", res.Active, res.Count)
	}

	// 取消收藏不应触碰点赞状态
	if _, err := ToggleVideoBookmark(ctx, userId, video.VideoId); err != nil {
		t.Fatalf("bookmark untoggle failed: %v", err)
	}
	liked, err := GetLikedVideoIds(ctx, userId, []int64{video.VideoId})
	if err != nil {
		t.Fatalf("GetLikedVideoIds failed: %v", err)
	}
	if !liked[video.VideoId] {
		t.Error("like membership should survive bookmark untoggle")
	}
}

func TestToggleVideoLikeNotFound(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := ToggleVideoLike(ctx, utils.GenId(), -1)
	Err := errno.ConvertErr(err)
	if Err.ErrCode != errno.VideoNotFoundErrCode {
		t.Errorf("expected VideoNotFoundErr, got %v", err)
	}
}

// TestRecountVideoEngagement 人为制造计数漂移后重算应恢复一致
func TestRecountVideoEngagement(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	video := createTestVideo(t, ctx)

	for i := 0; i < 3; i++ {
		if _, err := ToggleVideoLike(ctx, utils.GenId(), video.VideoId); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", video.VideoId).
		Update("like_count", 100).Error; err != nil {
		t.Fatalf("failed to inject drift: %v", err)
	}

	if err := RecountVideoEngagement(ctx, video.VideoId); err != nil {
		t.Fatalf("RecountVideoEngagement failed: %v", err)
	}
	var got model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", video.VideoId).First(&got).Error; err != nil {
		t.Fatalf("failed to reload video: %v", err)
	}
	if got.LikeCount != 3 {
		t.Errorf("recounted like_count = %d, want 3", got.LikeCount)
	}
}

func TestCreateComment(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	video := createTestVideo(t, ctx)

	comment := &model.Comment{
		CommentId: utils.GenId(),
		UserId:    utils.GenId(),
		VideoId:   video.VideoId,
		Content:   "nice video",
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := CreateComment(ctx, comment); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	var got model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", video.VideoId).First(&got).Error; err != nil {
		t.Fatalf("failed to reload video: %v", err)
	}
	if got.CommentCount != 1 {
		t.Errorf("comment_count = %d, want 1", got.CommentCount)
	}

	comments, err := GetVideoCommentListByPart(ctx, video.VideoId, 1, 10)
	if err != nil {
		t.Fatalf("GetVideoCommentListByPart failed: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "nice video" {
		t.Errorf("unexpected comment list: %+v", comments)
	}
}

func TestWithConflictRetry(t *testing.T) {
	t.Run("TestNonRetryableError", func(t *testing.T) {
		calls := 0
		err := withConflictRetry(func() error {
			calls++
			return errno.VideoNotFoundErr
		})
		if calls != 1 {
			t.Errorf("non-retryable error should not be retried, got %d calls", calls)
		}
		if errno.ConvertErr(err).ErrCode != errno.VideoNotFoundErrCode {
			t.Errorf("error should pass through unchanged, got %v", err)
		}
	})

	t.Run("TestRetryExhaustion", func(t *testing.T) {
		deadlock := &mysql2.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
		calls := 0
		err := withConflictRetry(func() error {
			calls++
			return errors.WithMessage(deadlock, "tx failed")
		})
		if calls != constants.ToggleMaxRetry+1 {
			t.Errorf("expected %d attempts, got %d", constants.ToggleMaxRetry+1, calls)
		}
		if errno.ConvertErr(err).ErrCode != errno.ConflictErrCode {
			t.Errorf("exhausted retries should map to ConflictErr, got %v", err)
		}
	})

	t.Run("TestSuccess", func(t *testing.T) {
		if err := withConflictRetry(func() error { return nil }); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
