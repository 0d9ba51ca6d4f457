package honeypot_api

// File: beehive_server/internal/api/honeypot_api/update.go
// Description: 蜜罐更新接口实现，支持任意字段子集的部分更新，包含蜜罐存在性校验及类型枚举校验

import (
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// UpdateRequest 蜜罐更新请求参数结构体
// 所有字段均为指针类型，nil表示本次请求未传该字段，保持原值不变
type UpdateRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1" label:"蜜罐名称"`                    // 蜜罐名称（传入时不可为空）
	Type   *string `json:"type" binding:"omitempty,oneof=ssh telnet http" label:"蜜罐类型"`    // 蜜罐类型（传入时枚举校验）
	Host   *string `json:"host" binding:"omitempty,min=1" label:"监听地址"`                    // 监听地址（传入时不可为空）
	Port   *int    `json:"port"`                                                              // 监听端口
	Status *string `json:"status" binding:"omitempty,oneof=active inactive" label:"蜜罐状态"` // 部署状态（传入时枚举校验）
}

// UpdateView 蜜罐更新接口处理函数
func (HoneypotApi) UpdateView(c *gin.Context) {
	log := middleware.GetLog(c)
	// 获取并绑定路径ID参数
	id := middleware.GetBindUri[models.IDRequest](c)

	// 先校验待更新的蜜罐是否存在，存在性校验优先于请求体校验
	var model models.HoneypotModel
	if err := global.DB.Take(&model, id.ID).Error; err != nil {
		log.WithFields(map[string]interface{}{
			"honeypot_id": id.ID,
			"error":       err,
		}).Warn("honeypot not found") // 蜜罐不存在
		response.FailWithNotFound("蜜罐不存在", c)
		return
	}

	// 绑定更新请求参数
	var cr UpdateRequest
	if err := c.ShouldBindJSON(&cr); err != nil {
		response.FailWithError(err, c)
		return
	}

	log.WithFields(map[string]interface{}{
		"honeypot_id":  id.ID,
		"request_data": cr,
	}).Info("honeypot update request received") // 收到蜜罐更新请求

	// 仅覆盖本次请求传入的字段
	if cr.Name != nil {
		model.Name = *cr.Name
	}
	if cr.Type != nil {
		model.Type = *cr.Type
	}
	if cr.Host != nil {
		model.Host = *cr.Host
	}
	if cr.Port != nil {
		model.Port = *cr.Port
	}
	if cr.Status != nil {
		model.Status = *cr.Status
	}

	// 执行更新操作
	if err := global.DB.Save(&model).Error; err != nil {
		log.WithFields(map[string]interface{}{
			"honeypot_id": id.ID,
			"error":       err,
		}).Error("failed to update honeypot") // 蜜罐更新失败
		response.FailWithServerError("蜜罐更新失败", c)
		return
	}

	// 统计蜜罐关联的入侵日志数
	global.DB.Model(&models.LogModel{}).
		Where("honeypot_id = ?", model.ID).Count(&model.LogsCount)

	log.WithFields(map[string]interface{}{
		"honeypot_id": model.ID,
	}).Info("honeypot updated successfully") // 蜜罐更新成功

	response.Ok(model, c)
}
