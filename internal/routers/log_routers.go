package routers

// File: beehive_server/internal/routers/log_routers.go
// Description: 入侵日志模块路由配置，定义日志相关接口的路由规则及中间件绑定

import (
	"beehive_server/internal/api"
	"beehive_server/internal/api/log_api"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"

	"github.com/gin-gonic/gin"
)

// LogRouters 注册入侵日志模块相关路由
func LogRouters(r *gin.RouterGroup) {
	// 获取日志API实例
	var app = api.App.LogApi
	// GET /logs - 获取日志列表（支持honeypot_id、ip_address、event_type组合过滤）
	// 绑定Query参数结构体,解析URL查询参数到ListRequest结构体
	r.GET("logs", middleware.BindQueryMiddleware[log_api.ListRequest], app.ListView)
	// POST /logs - 上报入侵日志
	r.POST("logs", middleware.BindJsonMiddleware[log_api.CreateRequest], app.CreateView)
	// GET /logs/:id - 获取指定日志详情
	r.GET("logs/:id", middleware.BindUriMiddleware[models.IDRequest], app.DetailView)
	// DELETE /logs/:id - 删除单条日志
	r.DELETE("logs/:id", middleware.BindUriMiddleware[models.IDRequest], app.RemoveView)
}
