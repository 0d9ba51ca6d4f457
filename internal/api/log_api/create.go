package log_api

// File: beehive_server/internal/api/log_api/create.go
// Description: 入侵日志上报API接口，蜜罐存在性校验与日志入库在同一事务内完成

import (
	"errors"
	"time"

	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// errHoneypotNotFound 归属蜜罐不存在错误，用于区分404与存储错误
var errHoneypotNotFound = errors.New("honeypot not found")

// CreateRequest 入侵日志上报请求参数结构体
type CreateRequest struct {
	HoneypotID uint   `json:"honeypot_id" binding:"required" label:"蜜罐ID"`  // 归属蜜罐ID（必需，须指向已存在蜜罐）
	IpAddress  string `json:"ip_address" binding:"required" label:"来源IP"`   // 来源IP（必需）
	EventType  string `json:"event_type" binding:"required" label:"事件类型"` // 事件类型（必需，自由文本）
	Details    string `json:"details"`                                        // 事件详情（可选）
}

// CreateView 入侵日志上报接口处理函数
func (LogApi) CreateView(c *gin.Context) {
	log := middleware.GetLog(c)
	// 获取并绑定入侵日志上报请求参数
	cr := middleware.GetBind[CreateRequest](c)

	// 组装日志数据，事件时间由服务端写入
	model := models.LogModel{
		HoneypotID: cr.HoneypotID,
		IpAddress:  cr.IpAddress,
		EventType:  cr.EventType,
		Details:    cr.Details,
		Timestamp:  time.Now().UTC(),
	}

	// 蜜罐存在性校验与日志入库必须在同一事务内，
	// 防止与蜜罐级联删除并发时产生孤儿日志
	err := global.DB.Transaction(func(tx *gorm.DB) error {
		var honeypot models.HoneypotModel
		if err := tx.Take(&honeypot, cr.HoneypotID).Error; err != nil {
			return errHoneypotNotFound
		}
		return tx.Create(&model).Error
	})
	if errors.Is(err, errHoneypotNotFound) {
		log.WithFields(map[string]interface{}{
			"honeypot_id": cr.HoneypotID,
		}).Warn("honeypot not found for log creation") // 归属蜜罐不存在
		response.FailWithNotFound("蜜罐不存在", c)
		return
	}
	if err != nil {
		log.WithFields(map[string]interface{}{
			"model_data": model,
			"error":      err,
		}).Error("failed to create log in database") // 日志入库失败
		response.FailWithServerError("日志创建失败", c)
		return
	}

	log.WithFields(map[string]interface{}{
		"log_id":      model.ID,
		"honeypot_id": model.HoneypotID,
		"event_type":  model.EventType,
	}).Info("log created successfully") // 日志上报成功

	response.Created(model, c)
}
