package log_api

// File: beehive_server/internal/api/log_api/remove.go
// Description: 入侵日志删除API接口，仅删除单条日志，不产生级联

import (
	"beehive_server/internal/global"
	"beehive_server/internal/middleware"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// RemoveView 入侵日志删除接口处理函数
func (LogApi) RemoveView(c *gin.Context) {
	cr := middleware.GetBindUri[models.IDRequest](c)
	log := middleware.GetLog(c)

	// 校验待删除的日志是否存在
	var model models.LogModel
	if err := global.DB.Take(&model, cr.ID).Error; err != nil {
		response.FailWithNotFound("日志不存在", c)
		return
	}

	// 执行删除操作
	if err := global.DB.Delete(&model).Error; err != nil {
		log.WithFields(map[string]interface{}{
			"log_id": cr.ID,
			"error":  err,
		}).Error("failed to delete log") // 日志删除失败
		response.FailWithServerError("日志删除失败", c)
		return
	}

	log.WithFields(map[string]interface{}{
		"log_id": cr.ID,
	}).Info("log deleted successfully") // 日志删除成功

	response.OkWithMsg("日志删除成功", c)
}
