package routers

// File: beehive_server/internal/routers/enter.go
// Description: 路由模块，负责初始化Gin引擎、注册API路由并启动HTTP服务

import (
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InitRouter 初始化Gin引擎并注册全部API路由
func InitRouter() *gin.Engine {
	// 获取系统配置信息
	system := global.Config.System
	// 设置Gin运行模式（debug/release/test）
	gin.SetMode(system.Mode)

	// 创建默认Gin引擎
	r := gin.Default()
	// 创建API根路由分组
	g := r.Group("api")
	g.Use(middleware.LogMiddleware)

	// 路由注册
	IndexRouters(g)    // 注册健康检查与统计相关路由
	HoneypotRouters(g) // 注册蜜罐相关路由
	LogRouters(g)      // 注册入侵日志相关路由
	SettingsRouters(g) // 注册系统设置相关路由

	return r
}

// Run 初始化路由引擎并启动HTTP服务
func Run() {
	r := InitRouter()

	// 获取HTTP服务监听地址
	webAddr := global.Config.System.WebAddr
	logrus.Infof("web addr run %s", webAddr)

	// 启动HTTP服务
	r.Run(webAddr)
}
