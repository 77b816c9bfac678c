package db

import (
	"context"
	"os"
	"strconv"
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
	if err := testDB.AutoMigrate(&model.User{}, &model.Follow{}); err != nil {
		t.Fatalf("failed to migrate test tables: %v", err)
	}
	DB = testDB
}

func createTestUser(t *testing.T, ctx context.Context) *model.User {
	t.Helper()
	userId := utils.GenId()
	user := &model.User{
		UserId:    userId,
		UserName:  "relation_test_" + strconv.FormatInt(userId, 10),
		CreatedAt: time.Now().Format(constants.DataFormate),
		UpdatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	t.Cleanup(func() {
		DB.Where("user_id = ?", user.UserId).Delete(&model.User{})
		DB.Where("follower_id = ? Or followee_id = ?", user.UserId, user.UserId).Delete(&model.Follow{})
	})
	return user
}

// TestToggleFollow 关注/取关往返后账本与计数都要归零
func TestToggleFollow(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, ctx)
	bob := createTestUser(t, ctx)

	isFollowing, err := ToggleFollow(ctx, alice.UserId, bob.UserId)
	if err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if !isFollowing {
		t.Error("first toggle should follow")
	}

	exist, err := IsRelationExist(ctx, alice.UserId, bob.UserId)
	if err != nil {
		t.Fatalf("IsRelationExist failed: %v", err)
	}
	if !exist {
		t.Error("ledger row should exist after follow")
	}

	// 关注是单向的 反向不应存在
	reverse, err := IsRelationExist(ctx, bob.UserId, alice.UserId)
	if err != nil {
		t.Fatalf("IsRelationExist failed: %v", err)
	}
	if reverse {
		t.Error("follow must not be symmetric")
	}

	var gotAlice, gotBob model.User
	if err := DB.WithContext(ctx).Where("user_id = ?", alice.UserId).First(&gotAlice).Error; err != nil {
		t.Fatalf("failed to reload alice: %v", err)
	}
	if err := DB.WithContext(ctx).Where("user_id = ?", bob.UserId).First(&gotBob).Error; err != nil {
		t.Fatalf("failed to reload bob: %v", err)
	}
	if gotAlice.FollowingCount != 1 || gotBob.FollowerCount != 1 {
		t.Errorf("counters after follow: following=%d follower=%d, want 1/1", gotAlice.FollowingCount, gotBob.FollowerCount)
	}

	isFollowing, err = ToggleFollow(ctx, alice.UserId, bob.UserId)
	if err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if isFollowing {
		t.Error("second toggle should unfollow")
	}

	if err := DB.WithContext(ctx).Where("user_id = ?", alice.UserId).First(&gotAlice).Error; err != nil {
		t.Fatalf("failed to reload alice: %v", err)
	}
	if err := DB.WithContext(ctx).Where("user_id = ?", bob.UserId).First(&gotBob).Error; err != nil {
		t.Fatalf("failed to reload bob: %v", err)
	}
	if gotAlice.FollowingCount != 0 || gotBob.FollowerCount != 0 {
		t.Errorf("counters after unfollow: following=%d follower=%d, want 0/0", gotAlice.FollowingCount, gotBob.FollowerCount)
	}
}

func TestToggleFollowMissingUser(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, ctx)

	_, err := ToggleFollow(ctx, alice.UserId, -1)
	if errno.ConvertErr(err).ErrCode != errno.UserNotFoundErrCode {
		t.Errorf("expected UserNotFoundErr, got %v", err)
	}
}

// TestFollowLists 列表是账本的投影 互关才算朋友
func TestFollowLists(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, ctx)
	bob := createTestUser(t, ctx)
	carol := createTestUser(t, ctx)

	mustFollow := func(from, to int64) {
		t.Helper()
		if _, err := ToggleFollow(ctx, from, to); err != nil {
			t.Fatalf("follow failed: %v", err)
		}
	}
	mustFollow(alice.UserId, bob.UserId)
	mustFollow(alice.UserId, carol.UserId)
	mustFollow(bob.UserId, alice.UserId)

	following, err := GetFollowingListPaged(ctx, alice.UserId, 1, 10)
	if err != nil {
		t.Fatalf("GetFollowingListPaged failed: %v", err)
	}
	if len(following) != 2 {
		t.Errorf("alice following = %v, want 2 entries", following)
	}

	followers, err := GetFollowerListPaged(ctx, alice.UserId, 1, 10)
	if err != nil {
		t.Fatalf("GetFollowerListPaged failed: %v", err)
	}
	if len(followers) != 1 || followers[0] != bob.UserId {
		t.Errorf("alice followers = %v, want [bob]", followers)
	}

	friends, err := GetFriendListPaged(ctx, alice.UserId, 1, 10)
	if err != nil {
		t.Fatalf("GetFriendListPaged failed: %v", err)
	}
	if len(friends) != 1 || friends[0] != bob.UserId {
		t.Errorf("alice friends = %v, want [bob]", friends)
	}
}

// TestWithConflictRetry 互关死锁会被重试 非死锁错误原样透传
func TestWithConflictRetry(t *testing.T) {
	t.Run("TestNonRetryableError", func(t *testing.T) {
		calls := 0
		err := withConflictRetry(func() error {
			calls++
			return errno.UserNotFoundErr
		})
		if calls != 1 {
			t.Errorf("non-retryable error should not be retried, got %d calls", calls)
		}
		if errno.ConvertErr(err).ErrCode != errno.UserNotFoundErrCode {
			t.Errorf("error should pass through unchanged, got %v", err)
		}
	})

	t.Run("TestDeadlockRetryExhaustion", func(t *testing.T) {
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

	t.Run("TestDeadlockThenSuccess", func(t *testing.T) {
		deadlock := &mysql2.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
		calls := 0
		err := withConflictRetry(func() error {
			calls++
			if calls == 1 {
				return deadlock
			}
			return nil
		})
		if err != nil {
			t.Errorf("retry should recover from a transient deadlock, got %v", err)
		}
		if calls != 2 {
			t.Errorf("expected 2 attempts, got %d", calls)
		}
	})
}

// TestRecountUserRelations 计数漂移后以账本重算
func TestRecountUserRelations(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := createTestUser(t, ctx)
	bob := createTestUser(t, ctx)

	if _, err := ToggleFollow(ctx, alice.UserId, bob.UserId); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", bob.UserId).
		Update("follower_count", 99).Error; err != nil {
		t.Fatalf("failed to inject drift: %v", err)
	}

	if err := RecountUserRelations(ctx, bob.UserId); err != nil {
		t.Fatalf("RecountUserRelations failed: %v", err)
	}
	var got model.User
	if err := DB.WithContext(ctx).Where("user_id = ?", bob.UserId).First(&got).Error; err != nil {
		t.Fatalf("failed to reload bob: %v", err)
	}
	if got.FollowerCount != 1 {
		t.Errorf("recounted follower_count = %d, want 1", got.FollowerCount)
	}
}
