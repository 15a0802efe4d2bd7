//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewPostDAO,
	NewUsers,
	NewPostLikeDAO,
	NewPostStatsDAO,
	NewUserFollowDAO,
	NewUserStatsDAO,
	NewComment,
	NewNotificationDAO,
	NewNotificationPreferenceDAO,
)
