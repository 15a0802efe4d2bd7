package handler

import (
	"net/http"

	"Crux/config"
	"Crux/middleware"
	"Crux/pkg/context"
	"Crux/pkg/response"
	"Crux/service"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.POST("/:user_id/follow", authorize, context.Wrap(h.ToggleFollow))
	g.GET("/:user_id/follow", authorize, context.Wrap(h.GetFollowStatus))
	g.GET("/:user_id/followers/count", context.Wrap(h.GetFollowerCount))
	g.GET("/:user_id/following/count", context.Wrap(h.GetFollowingCount))
}

// ToggleFollow 关注开关，已关注则取消
func (h *Follow) ToggleFollow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	targetUserID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	result, err := h.FollowService.ToggleFollow(c.Request.Context(), userID, targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// GetFollowStatus 查询是否已关注
func (h *Follow) GetFollowStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	targetUserID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	isFollowing, err := h.FollowService.IsFollowing(c.Request.Context(), userID, targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"is_following": isFollowing})
	return nil
}

// GetFollowerCount 查询粉丝数
func (h *Follow) GetFollowerCount(c *gin.Context) error {
	targetUserID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	count, err := h.FollowService.GetFollowerCount(c.Request.Context(), targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"follower_count": count})
	return nil
}

// GetFollowingCount 查询关注数
func (h *Follow) GetFollowingCount(c *gin.Context) error {
	targetUserID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	count, err := h.FollowService.GetFollowingCount(c.Request.Context(), targetUserID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"following_count": count})
	return nil
}
