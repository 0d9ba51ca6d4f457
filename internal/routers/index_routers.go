package routers

// File: beehive_server/internal/routers/index_routers.go
// Description: 健康检查与统计模块路由配置

import (
	"beehive_server/internal/api"

	"github.com/gin-gonic/gin"
)

// IndexRouters 注册健康检查与统计相关路由
func IndexRouters(r *gin.RouterGroup) {
	var app = api.App.IndexApi
	// GET /health - 健康检查
	r.GET("health", app.HealthView)
	// GET /stats - 统计数据
	r.GET("stats", app.StatsView)
}
