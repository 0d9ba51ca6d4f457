package log_api

// File: beehive_server/internal/api/log_api/detail.go
// Description: 入侵日志详情API接口

import (
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// DetailView 入侵日志详情查询接口处理函数
func (LogApi) DetailView(c *gin.Context) {
	// 从Gin上下文绑定并解析ID请求参数
	cr := middleware.GetBindUri[models.IDRequest](c)

	// 根据日志ID从数据库查询单条日志记录
	var model models.LogModel
	err := global.DB.Take(&model, cr.ID).Error
	if err != nil {
		response.FailWithNotFound("日志不存在", c)
		return
	}

	response.Ok(model, c)
}
