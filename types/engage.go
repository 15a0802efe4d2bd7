package types

// ToggleLikeResponse 点赞开关的返回，带绝对计数供客户端对齐乐观 UI
type ToggleLikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// ToggleFollowResponse 关注开关的返回
type ToggleFollowResponse struct {
	Following     bool  `json:"following"`
	FollowerCount int64 `json:"follower_count"`
}
