package honeypot_api

// File: beehive_server/internal/api/honeypot_api/detail.go
// Description: 蜜罐详情API接口

import (
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// DetailView 蜜罐详情查询接口处理函数
func (HoneypotApi) DetailView(c *gin.Context) {
	// 从Gin上下文绑定并解析ID请求参数
	cr := middleware.GetBindUri[models.IDRequest](c)

	// 根据蜜罐ID从数据库查询单条蜜罐记录
	var model models.HoneypotModel
	err := global.DB.Take(&model, cr.ID).Error
	// 查询失败（无匹配记录）时返回错误提示
	if err != nil {
		response.FailWithNotFound("蜜罐不存在", c)
		return
	}

	// 统计蜜罐关联的入侵日志数
	global.DB.Model(&models.LogModel{}).
		Where("honeypot_id = ?", model.ID).Count(&model.LogsCount)

	// 查询成功，返回蜜罐详情数据
	response.Ok(model, c)
}
