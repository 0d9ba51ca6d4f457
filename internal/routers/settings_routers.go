package routers

// File: beehive_server/internal/routers/settings_routers.go
// Description: 系统设置模块路由配置

import (
	"beehive_server/internal/api"
	"beehive_server/internal/api/settings_api"
	"beehive_server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SettingsRouters 注册系统设置模块相关路由
func SettingsRouters(r *gin.RouterGroup) {
	var app = api.App.SettingsApi
	// GET /settings - 查询系统设置
	r.GET("settings", app.InfoView)
	// PUT /settings - 更新系统设置并持久化到配置文件
	r.PUT("settings", middleware.BindJsonMiddleware[settings_api.UpdateRequest], app.UpdateView)
}
