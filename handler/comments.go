package handler

import (
	"net/http"
	"strconv"

	"Crux/config"
	"Crux/middleware"
	"Crux/pkg/context"
	"Crux/pkg/response"
	"Crux/service"
	"Crux/types"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	Config          *config.Config
	CommentsService service.ICommentsService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(ch.Config.Jwt.Secret))
	comments := r.Group("/v1/comments")
	comments.POST("/create", authorize, context.Wrap(ch.CreateComment))
	comments.POST("/edit", authorize, context.Wrap(ch.EditComment))
	comments.POST("/delete", authorize, context.Wrap(ch.DeleteComment))
	comments.GET("/list/:post_id", context.Wrap(ch.GetComments))
	comments.GET("/replies/:comment_id", context.Wrap(ch.GetReplies))
}

// CreateComment 创建评论，parent_id 非 0 时是回复
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	comment, err := ch.CommentsService.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

// EditComment 编辑评论内容
func (ch *CommentsHandler) EditComment(c *gin.Context) error {
	var req types.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	comment, err := ch.CommentsService.EditComment(c.Request.Context(), userID, req.CommentID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

// DeleteComment 删除评论，一级评论会级联删掉回复
func (ch *CommentsHandler) DeleteComment(c *gin.Context) error {
	var req types.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	if err := ch.CommentsService.DeleteComment(c.Request.Context(), userID, req.CommentID); err != nil {
		return err
	}

	response.Success(c, "删除评论成功")
	return nil
}

// GetComments 获取一级评论列表（游标分页）
func (ch *CommentsHandler) GetComments(c *gin.Context) error {
	postID, err := paramID(c, "post_id")
	if err != nil {
		return err
	}

	result, err := ch.CommentsService.GetComments(
		c.Request.Context(),
		postID,
		c.Query("cursor"),
		queryPageSize(c, types.DefaultPageSize),
	)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}

// GetReplies 获取某条一级评论的回复（偏移分页）
func (ch *CommentsHandler) GetReplies(c *gin.Context) error {
	commentID, err := paramID(c, "comment_id")
	if err != nil {
		return err
	}

	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}

	result, err := ch.CommentsService.GetReplies(
		c.Request.Context(),
		commentID,
		offset,
		queryPageSize(c, types.DefaultPageSize),
	)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}
