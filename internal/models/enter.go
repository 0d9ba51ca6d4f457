package models

// File: beehive_server/internal/models/enter.go
// Description: 数据基础模型定义，提供通用基础模型和通用请求结构体

import (
	"time"

	"gorm.io/gorm"
)

// Model 通用基础模型结构体
// 包含主键、创建时间、更新时间、软删除字段，作为所有业务模型的嵌入基类
type Model struct {
	ID        uint           `gorm:"primarykey" json:"id"` // 主键ID（自增）
	CreatedAt time.Time      `json:"created_at"`           // 记录创建时间
	UpdatedAt time.Time      `json:"updated_at"`           // 记录最后更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`       // 软删除标识（gorm内置）
}

// IDRequest 路径ID请求参数结构体
// 用于接收URL路径中的记录ID参数
type IDRequest struct {
	ID uint `uri:"id" binding:"required"` // 记录ID
}
