package handler

import (
	"net/http"
	"strconv"

	"Crux/pkg/response"

	"github.com/gin-gonic/gin"
)

// paramID 解析路径里的数字 ID
func paramID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 参数错误")
	}
	return id, nil
}

// queryPageSize 解析每页数量，非法值回落默认
func queryPageSize(c *gin.Context, fallback int) int {
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			return v
		}
	}
	return fallback
}
