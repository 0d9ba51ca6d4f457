package honeypot_api

// File: beehive_server/internal/api/honeypot_api/remove.go
// Description: 蜜罐删除API接口，删除蜜罐时在同一事务内级联删除其全部入侵日志

import (
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RemoveView 蜜罐删除接口处理函数
func (HoneypotApi) RemoveView(c *gin.Context) {
	cr := middleware.GetBindUri[models.IDRequest](c)
	// 获取请求上下文日志实例
	log := middleware.GetLog(c)

	// 校验待删除的蜜罐是否存在
	var model models.HoneypotModel
	if err := global.DB.Take(&model, cr.ID).Error; err != nil {
		log.WithFields(map[string]interface{}{
			"honeypot_id": cr.ID,
			"error":       err,
		}).Warn("honeypot not found") // 蜜罐不存在
		response.FailWithNotFound("蜜罐不存在", c)
		return
	}

	// 级联删除必须与蜜罐删除处于同一事务，避免出现孤儿日志
	var logCount int64
	err := global.DB.Transaction(func(tx *gorm.DB) error {
		// 删除蜜罐关联的全部入侵日志
		result := tx.Where("honeypot_id = ?", model.ID).Delete(&models.LogModel{})
		if result.Error != nil {
			return result.Error
		}
		logCount = result.RowsAffected
		// 删除蜜罐本身
		return tx.Delete(&model).Error
	})
	if err != nil {
		log.WithFields(map[string]interface{}{
			"honeypot_id": cr.ID,
			"error":       err,
		}).Error("failed to delete honeypot") // 蜜罐删除失败
		response.FailWithServerError("蜜罐删除失败", c)
		return
	}

	log.WithFields(map[string]interface{}{
		"honeypot_id": cr.ID,
		"log_count":   logCount,
	}).Info("honeypot deleted successfully") // 蜜罐删除成功，附带级联删除的日志数

	response.OkWithMsg("蜜罐删除成功", c)
}
