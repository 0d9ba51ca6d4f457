package settings_api

// File: beehive_server/internal/api/settings_api/enter.go
// Description: 系统设置模块API接口，提供设置查询与更新并持久化到配置文件

import (
	"beehive_server/internal/core"
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// SettingsApi 系统设置模块API接口结构体，封装设置查询、设置更新相关接口方法
type SettingsApi struct {
}

// SettingsResponse 系统设置查询响应结构体
type SettingsResponse struct {
	WebAddr          string `json:"web_addr"`           // Web服务监听地址
	Mode             string `json:"mode"`               // 运行模式
	LogRetentionDays int    `json:"log_retention_days"` // 入侵日志保留天数
	MonitorEnable    bool   `json:"monitor_enable"`     // 是否开启日志监听
}

// UpdateRequest 系统设置更新请求参数结构体
// 所有字段均为指针类型，nil表示本次请求未传该字段，保持原值不变
type UpdateRequest struct {
	LogRetentionDays *int  `json:"log_retention_days" binding:"omitempty,gte=0" label:"日志保留天数"` // 入侵日志保留天数，0表示不清理
	MonitorEnable    *bool `json:"monitor_enable"`                                                  // 是否开启日志监听
}

// InfoView 系统设置查询接口处理函数
func (SettingsApi) InfoView(c *gin.Context) {
	system := global.Config.System
	response.Ok(SettingsResponse{
		WebAddr:          system.WebAddr,
		Mode:             system.Mode,
		LogRetentionDays: system.LogRetentionDays,
		MonitorEnable:    global.Config.Monitor.Enable,
	}, c)
}

// UpdateView 系统设置更新接口处理函数
func (SettingsApi) UpdateView(c *gin.Context) {
	log := middleware.GetLog(c)
	// 获取并绑定系统设置更新请求参数
	cr := middleware.GetBind[UpdateRequest](c)

	// 仅覆盖本次请求传入的字段
	if cr.LogRetentionDays != nil {
		global.Config.System.LogRetentionDays = *cr.LogRetentionDays
	}
	if cr.MonitorEnable != nil {
		global.Config.Monitor.Enable = *cr.MonitorEnable
	}

	// 将更新后的配置持久化到配置文件
	if err := core.SetConfig(global.Config); err != nil {
		log.WithFields(map[string]interface{}{
			"error": err,
		}).Error("failed to save settings file") // 配置文件保存失败
		response.FailWithServerError("保存配置文件失败", c)
		return
	}

	log.Info("settings updated successfully") // 系统设置更新成功
	response.OkWithMsg("系统设置修改成功", c)
}
