package index_api

// File: beehive_server/internal/api/index_api/enter.go
// Description: 健康检查与统计API接口

import (
	"time"

	"beehive_server/internal/global"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// IndexApi 首页模块API接口结构体，封装健康检查及数据统计相关接口方法
type IndexApi struct {
}

// HealthResponse 健康检查响应结构体
type HealthResponse struct {
	Status    string `json:"status"`    // 固定状态标识
	Timestamp string `json:"timestamp"` // 当前服务器时间
}

// HealthView 健康检查接口处理函数，无副作用，进程存活期间恒定成功
func (IndexApi) HealthView(c *gin.Context) {
	response.Ok(HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}, c)
}

// StatsResponse 统计数据响应结构体
type StatsResponse struct {
	HoneypotCount int64 `json:"honeypot_count"` // 蜜罐总数
	ActiveCount   int64 `json:"active_count"`   // 运行中蜜罐数
	LogCount      int64 `json:"log_count"`      // 入侵日志总数
}

// StatsView 统计数据查询接口处理函数
func (IndexApi) StatsView(c *gin.Context) {
	// 初始化统计响应结构体
	var data StatsResponse

	// 查询蜜罐表总记录数
	global.DB.Model(&models.HoneypotModel{}).Count(&data.HoneypotCount)
	// 查询运行中的蜜罐数
	global.DB.Model(&models.HoneypotModel{}).
		Where("status = ?", models.HoneypotStatusActive).Count(&data.ActiveCount)
	// 查询入侵日志表总记录数
	global.DB.Model(&models.LogModel{}).Count(&data.LogCount)

	// 返回成功响应，携带统计数据
	response.Ok(data, c)
}
