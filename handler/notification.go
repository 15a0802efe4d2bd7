package handler

import (
	"net/http"

	"Crux/config"
	"Crux/middleware"
	"Crux/models"
	"Crux/pkg/context"
	"Crux/pkg/response"
	"Crux/service"
	"Crux/types"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Config            *config.Config
	NotifyService     service.INotifyService
	PreferenceService service.IPreferenceService
}

func (h *NotificationHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/notifications", authorize)
	g.GET("/list", context.Wrap(h.List))
	g.GET("/unread/count", context.Wrap(h.UnreadCount))
	g.POST("/read", context.Wrap(h.MarkRead))
	g.POST("/read/all", context.Wrap(h.MarkAllRead))
	g.POST("/clear", context.Wrap(h.Clear))
	g.GET("/preferences", context.Wrap(h.GetPreferences))
	g.PUT("/preferences", context.Wrap(h.UpdatePreferences))
}

// List 通知列表（游标分页）
func (h *NotificationHandler) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	result, err := h.NotifyService.List(
		c.Request.Context(),
		userID,
		c.Query("cursor"),
		queryPageSize(c, types.DefaultPageSize),
	)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// UnreadCount 未读数
func (h *NotificationHandler) UnreadCount(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	count, err := h.NotifyService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"unread_count": count})
	return nil
}

// MarkRead 标记单条已读
func (h *NotificationHandler) MarkRead(c *gin.Context) error {
	var req types.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.NotifyService.MarkRead(c.Request.Context(), userID, req.NotificationID); err != nil {
		return err
	}

	response.Success(c, "ok")
	return nil
}

// MarkAllRead 全部标记已读
func (h *NotificationHandler) MarkAllRead(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.NotifyService.MarkAllRead(c.Request.Context(), userID); err != nil {
		return err
	}

	response.Success(c, "ok")
	return nil
}

// Clear 清空通知
func (h *NotificationHandler) Clear(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.NotifyService.Clear(c.Request.Context(), userID); err != nil {
		return err
	}

	response.Success(c, "ok")
	return nil
}

// GetPreferences 查询通知偏好
func (h *NotificationHandler) GetPreferences(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	pref, err := h.PreferenceService.Get(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, pref)
	return nil
}

// UpdatePreferences 保存通知偏好
func (h *NotificationHandler) UpdatePreferences(c *gin.Context) error {
	var pref models.NotificationPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := h.PreferenceService.Update(c.Request.Context(), userID, &pref); err != nil {
		return err
	}

	response.Success(c, "ok")
	return nil
}
