package routers

// File: beehive_server/internal/routers/honeypot_routers.go
// Description: 蜜罐模块路由配置，定义蜜罐相关接口的路由规则及中间件绑定

import (
	"beehive_server/internal/api"
	"beehive_server/internal/api/honeypot_api"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"

	"github.com/gin-gonic/gin"
)

// HoneypotRouters 注册蜜罐模块相关路由
func HoneypotRouters(r *gin.RouterGroup) {
	// 获取蜜罐API实例
	var app = api.App.HoneypotApi
	// GET /honeypots - 获取蜜罐列表
	r.GET("honeypots", app.ListView)
	// POST /honeypots - 创建蜜罐
	// 绑定JSON参数结构体,解析请求体JSON数据到CreateRequest结构体
	r.POST("honeypots", middleware.BindJsonMiddleware[honeypot_api.CreateRequest], app.CreateView)
	// GET /honeypots/:id - 获取指定蜜罐详情
	r.GET("honeypots/:id", middleware.BindUriMiddleware[models.IDRequest], app.DetailView)
	// PUT /honeypots/:id - 更新蜜罐信息（支持部分字段）
	// 请求体在处理函数内部绑定，保证蜜罐不存在时404优先于参数校验400
	r.PUT("honeypots/:id", middleware.BindUriMiddleware[models.IDRequest], app.UpdateView)
	// DELETE /honeypots/:id - 删除蜜罐（级联删除其入侵日志）
	r.DELETE("honeypots/:id", middleware.BindUriMiddleware[models.IDRequest], app.RemoveView)
}
