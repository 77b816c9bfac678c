package service

import (
	"context"
	"testing"

	"ShortVid.com/pkg/errno"
)

// TestCreateCommentEmptyContent 空白内容在触达数据库之前就应被拒绝
func TestCreateCommentEmptyContent(t *testing.T) {
	svc := NewCommentService(context.Background(), nil)

	for _, content := range []string{"", "   ", "\t\n"} {
		if _, err := svc.CreateComment(1001, 2001, content); errno.ConvertErr(err).ErrCode != errno.CommentEmptyErrCode {
			t.Errorf("CreateComment(%q) should return CommentEmptyErr, got %v", content, err)
		}
	}
}
