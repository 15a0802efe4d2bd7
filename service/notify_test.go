package service

import (
	"context"
	"strings"
	"testing"

	"Crux/models"
	"Crux/types"
)

type fakeBus struct {
	topics []string
	events []string
}

func (b *fakeBus) Publish(topic string, event string, payload any) {
	b.topics = append(b.topics, topic)
	b.events = append(b.events, event)
}

type fakePrefs struct {
	allow bool
	err   error
}

func (p *fakePrefs) Allows(ctx context.Context, userID uint64, category string) (bool, error) {
	return p.allow, p.err
}

func (p *fakePrefs) Get(ctx context.Context, userID uint64) (*models.NotificationPreference, error) {
	return nil, nil
}

func (p *fakePrefs) Update(ctx context.Context, userID uint64, pref *models.NotificationPreference) error {
	return nil
}

// 自己给自己的动作不产生通知，偏好和库都不会被碰到
func TestDispatchSelfSuppressed(t *testing.T) {
	bus := &fakeBus{}
	s := &NotifyService{Bus: bus}

	err := s.Dispatch(context.Background(), 42, 42, types.PostLikedPayload{ActorName: "岩友"}, 1, "post")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(bus.events) != 0 {
		t.Errorf("published %v, want nothing", bus.events)
	}
}

// 收件人关掉了该分类，通知直接丢弃不落库
func TestDispatchPreferenceDisabled(t *testing.T) {
	bus := &fakeBus{}
	s := &NotifyService{
		Preference: &fakePrefs{allow: false},
		Bus:        bus,
	}

	err := s.Dispatch(context.Background(), 1, 2, types.NewFollowerPayload{ActorName: "岩友"}, 2, "user")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(bus.events) != 0 {
		t.Errorf("published %v, want nothing", bus.events)
	}
}

func TestPayloadVariants(t *testing.T) {
	tests := []struct {
		payload  types.NotificationPayload
		typ      string
		category string
		contains string
	}{
		{types.PostLikedPayload{ActorName: "小岩", PostTitle: "白河攀岩"}, models.NotifyTypePostLiked, models.CategoryPostLikes, "白河攀岩"},
		{types.PostCommentedPayload{ActorName: "小岩", PostTitle: "白河攀岩", Excerpt: "好线"}, models.NotifyTypePostCommented, models.CategoryPostComments, "好线"},
		{types.CommentRepliedPayload{ActorName: "小岩", Excerpt: "同感"}, models.NotifyTypeCommentReplied, models.CategoryCommentReplies, "回复"},
		{types.NewFollowerPayload{ActorName: "小岩"}, models.NotifyTypeNewFollower, models.CategoryFollows, "关注"},
		{types.NewMessagePayload{ActorName: "小岩"}, models.NotifyTypeNewMessage, models.CategoryMessages, "消息"},
		{types.GearListInvitePayload{ActorName: "小岩", ListName: "多段装备"}, models.NotifyTypeGearListInvite, models.CategoryGearListInvites, "多段装备"},
	}

	for _, tt := range tests {
		if got := tt.payload.Type(); got != tt.typ {
			t.Errorf("%T Type() = %q, want %q", tt.payload, got, tt.typ)
		}
		if got := tt.payload.Category(); got != tt.category {
			t.Errorf("%T Category() = %q, want %q", tt.payload, got, tt.category)
		}
		if got := tt.payload.Render(); !strings.Contains(got, tt.contains) {
			t.Errorf("%T Render() = %q, want contains %q", tt.payload, got, tt.contains)
		}
	}
}

// 偏好行缺失等价于全部开启
func TestPreferenceDefaultAllow(t *testing.T) {
	var pref *models.NotificationPreference
	for _, category := range []string{
		models.CategoryMessages,
		models.CategoryPostLikes,
		models.CategoryPostComments,
		models.CategoryCommentReplies,
		models.CategoryGearListInvites,
		models.CategoryFollows,
	} {
		if !pref.Allows(category) {
			t.Errorf("nil preference should allow %q", category)
		}
	}

	pref = &models.NotificationPreference{PostLikes: false, Follows: true}
	if pref.Allows(models.CategoryPostLikes) {
		t.Error("post_likes disabled but allowed")
	}
	if !pref.Allows(models.CategoryFollows) {
		t.Error("follows enabled but denied")
	}
}
