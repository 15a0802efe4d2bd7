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

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/posts")
	g.POST("/:post_id/like", authorize, context.Wrap(h.ToggleLike))
	g.GET("/:post_id/like", authorize, context.Wrap(h.GetLikeStatus))
	g.GET("/:post_id/like/count", context.Wrap(h.GetLikeCount))
}

// ToggleLike 点赞开关，已赞则取消
func (h *Like) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	result, err := h.LikeService.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// GetLikeStatus 查询当前用户是否已赞
func (h *Like) GetLikeStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	liked, err := h.LikeService.IsLiked(c.Request.Context(), userID, postID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"liked": liked})
	return nil
}

// GetLikeCount 查询点赞数
func (h *Like) GetLikeCount(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	count, err := h.LikeService.GetLikeCount(c.Request.Context(), postID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"like_count": count})
	return nil
}
