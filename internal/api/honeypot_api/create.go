package honeypot_api

// File: beehive_server/internal/api/honeypot_api/create.go
// Description: 蜜罐创建API接口

import (
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateRequest 蜜罐创建请求参数结构体
type CreateRequest struct {
	Name   string `json:"name" binding:"required" label:"蜜罐名称"`                          // 蜜罐名称（必需）
	Type   string `json:"type" binding:"required,oneof=ssh telnet http" label:"蜜罐类型"`    // 蜜罐类型（必需，枚举校验）
	Host   string `json:"host"`                                                              // 监听地址（可选，默认0.0.0.0）
	Port   int    `json:"port" binding:"required" label:"蜜罐端口"`                          // 监听端口（必需）
	Status string `json:"status" binding:"omitempty,oneof=active inactive" label:"蜜罐状态"` // 部署状态（可选，默认inactive）
}

// CreateView 蜜罐创建接口处理函数
func (HoneypotApi) CreateView(c *gin.Context) {
	// 获取日志句柄
	log := middleware.GetLog(c)
	// 获取并绑定蜜罐创建请求参数
	cr := middleware.GetBind[CreateRequest](c)

	log.WithFields(map[string]interface{}{
		"request_data": cr,
	}).Info("honeypot creation request received") // 收到蜜罐创建请求

	// 可选字段缺省时填充默认值
	if cr.Host == "" {
		cr.Host = "0.0.0.0"
	}
	if cr.Status == "" {
		cr.Status = models.HoneypotStatusInactive
	}

	// 组装蜜罐数据并入库
	model := models.HoneypotModel{
		Name:   cr.Name,
		Type:   cr.Type,
		Host:   cr.Host,
		Port:   cr.Port,
		Status: cr.Status,
	}
	if err := global.DB.Create(&model).Error; err != nil {
		log.WithFields(map[string]interface{}{
			"model_data": model,
			"error":      err,
		}).Error("failed to create honeypot in database") // 蜜罐入库失败
		response.FailWithServerError("蜜罐创建失败", c)
		return
	}

	log.WithFields(map[string]interface{}{
		"honeypot_id": model.ID,
		"name":        model.Name,
	}).Info("honeypot created successfully") // 蜜罐创建成功

	// 返回创建成功的完整蜜罐数据，新建蜜罐日志数为0
	response.Created(model, c)
}
