package honeypot_api

// File: beehive_server/internal/api/honeypot_api/list.go
// Description: 蜜罐列表查询API接口

import (
	"beehive_server/internal/global"
	"beehive_server/internal/models"
	"beehive_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// logCountResult 蜜罐入侵日志数聚合查询结果结构体
type logCountResult struct {
	HoneypotID uint  // 蜜罐ID
	Count      int64 // 关联日志数
}

// ListView 蜜罐列表查询接口处理函数
func (HoneypotApi) ListView(c *gin.Context) {
	// 查询全部蜜罐记录
	var list = make([]models.HoneypotModel, 0)
	if err := global.DB.Find(&list).Error; err != nil {
		response.FailWithServerError("查询蜜罐列表失败", c)
		return
	}

	// 聚合查询各蜜罐的入侵日志数（按蜜罐ID分组）
	var countList []logCountResult
	global.DB.Model(&models.LogModel{}).
		Select("honeypot_id, count(*) as count").
		Group("honeypot_id").Scan(&countList)

	// 构建蜜罐ID到日志数的映射（便于快速匹配）
	var countMap = map[uint]int64{}
	for _, i2 := range countList {
		countMap[i2.HoneypotID] = i2.Count
	}

	// 组装响应数据（关联入侵日志数）
	for index, model := range list {
		list[index].LogsCount = countMap[model.ID]
	}

	// 返回蜜罐列表数据
	response.Ok(list, c)
}
