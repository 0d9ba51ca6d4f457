package log_api

// File: beehive_server/internal/api/log_api/enter.go
// Description: 入侵日志模块API接口结构体定义

// LogApi 入侵日志模块API接口结构体，封装日志查询、上报、删除相关接口方法
type LogApi struct {
}
