package log_api

// File: beehive_server/internal/api/log_api/list.go
// Description: 入侵日志列表查询API接口，支持蜜罐ID、来源IP、事件类型的组合精确过滤

import (
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ListRequest 入侵日志列表查询请求参数结构体
type ListRequest struct {
	HoneypotID uint   `form:"honeypot_id"` // 按归属蜜罐ID精确过滤
	IpAddress  string `form:"ip_address"`  // 按来源IP精确过滤
	EventType  string `form:"event_type"`  // 按事件类型精确过滤
}

// ListView 入侵日志列表查询接口处理函数
func (LogApi) ListView(c *gin.Context) {
	// 获取并绑定过滤查询参数
	cr := middleware.GetBind[ListRequest](c)

	// 组合过滤条件，多个条件为AND关系，未传条件不参与过滤
	db := global.DB
	if cr.HoneypotID != 0 {
		db = db.Where("honeypot_id = ?", cr.HoneypotID)
	}
	if cr.IpAddress != "" {
		db = db.Where("ip_address = ?", cr.IpAddress)
	}
	if cr.EventType != "" {
		db = db.Where("event_type = ?", cr.EventType)
	}

	// 按事件发生时间倒序返回日志列表
	var list = make([]models.LogModel, 0)
	if err := db.Order("timestamp desc").Find(&list).Error; err != nil {
		response.FailWithServerError("查询日志列表失败", c)
		return
	}

	response.Ok(list, c)
}
