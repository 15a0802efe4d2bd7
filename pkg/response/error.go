package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误分类，handler/service 层统一用这些构造
func ErrUnauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func ErrForbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

func ErrNotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// ErrInvalidReference 引用对象不合法（父评论不在同一帖子、父评论不是一级评论等）
func ErrInvalidReference(msg string) *BizError {
	return NewError(http.StatusUnprocessableEntity, msg)
}

// ErrInvalidOperation 操作本身不合法（关注自己等）
func ErrInvalidOperation(msg string) *BizError {
	return NewError(http.StatusUnprocessableEntity, msg)
}

// ErrConflict 唯一键竞争，重试一次后仍失败才会抛出
func ErrConflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
