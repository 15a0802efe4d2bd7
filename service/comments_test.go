package service

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"Crux/models"
	"Crux/pkg/response"
	"Crux/types"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"normal", "这条线路太赞了", "这条线路太赞了", false},
		{"trims whitespace", "  好线  ", "好线", false},
		{"empty", "", "", true},
		{"whitespace only", "   \n\t ", "", true},
		{"exactly max", strings.Repeat("攀", maxCommentLen), strings.Repeat("攀", maxCommentLen), false},
		{"over max", strings.Repeat("攀", maxCommentLen+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateContent(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, types.DefaultPageSize},
		{-5, types.DefaultPageSize},
		{1, 1},
		{maxCommentsPage, maxCommentsPage},
		{maxCommentsPage + 1, maxCommentsPage},
	}
	for _, tt := range tests {
		if got := normalizeLimit(tt.in); got != tt.want {
			t.Errorf("normalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTrimPage(t *testing.T) {
	page := func(n int) []*models.Comment {
		items := make([]*models.Comment, n)
		for i := range items {
			items[i] = &models.Comment{ID: uint64(i + 1)}
		}
		return items
	}

	// 多取的那一条只用来判断 hasMore，不出现在结果里
	got, hasMore := trimPage(page(4), 3)
	if !hasMore || len(got) != 3 {
		t.Errorf("trimPage(4, 3) = %d items, hasMore %v", len(got), hasMore)
	}

	got, hasMore = trimPage(page(3), 3)
	if hasMore || len(got) != 3 {
		t.Errorf("trimPage(3, 3) = %d items, hasMore %v", len(got), hasMore)
	}

	got, hasMore = trimPage(nil, 3)
	if hasMore || len(got) != 0 {
		t.Errorf("trimPage(nil, 3) = %d items, hasMore %v", len(got), hasMore)
	}
}

// 编辑和删除只放行评论作者，帖子作者也不行
func TestAuthorizeCommentOwner(t *testing.T) {
	postOwner := uint64(1)
	author := uint64(2)
	comment := &models.Comment{ID: 10, PostID: 100, UserID: author}

	if err := authorizeCommentOwner(comment, author); err != nil {
		t.Fatalf("author should be allowed: %v", err)
	}

	for _, userID := range []uint64{postOwner, 3} {
		err := authorizeCommentOwner(comment, userID)
		if err == nil {
			t.Fatalf("user %d should be forbidden", userID)
		}
		var be *response.BizError
		if !errors.As(err, &be) || be.Code != http.StatusForbidden {
			t.Errorf("user %d: got %v, want 403 BizError", userID, err)
		}
	}
}

// 编辑后的响应和广播要带上新的 updated_at
func TestApplyEdit(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	comment := &models.Comment{
		ID:        10,
		Content:   "旧内容",
		CreatedAt: created,
		UpdatedAt: created,
	}

	applyEdit(comment, "新内容")

	if comment.Content != "新内容" {
		t.Errorf("content = %q", comment.Content)
	}
	if !comment.UpdatedAt.After(created) {
		t.Errorf("updated_at not advanced: %v", comment.UpdatedAt)
	}

	resp := toCommentResponse(comment)
	if !resp.UpdatedAt.Equal(comment.UpdatedAt) {
		t.Errorf("response updated_at = %v, want %v", resp.UpdatedAt, comment.UpdatedAt)
	}
}

func TestExcerpt(t *testing.T) {
	short := "好线"
	if got := excerpt(short); got != short {
		t.Errorf("excerpt(short) = %q", got)
	}

	long := strings.Repeat("攀", excerptLen+10)
	got := excerpt(long)
	if want := strings.Repeat("攀", excerptLen) + "…"; got != want {
		t.Errorf("excerpt(long) = %q, want %d runes + ellipsis", got, excerptLen)
	}
}
