package honeypot_api

// File: beehive_server/internal/api/honeypot_api/enter.go
// Description: 蜜罐模块API接口结构体定义

// HoneypotApi 蜜罐模块API接口结构体，封装蜜罐增删改查相关接口方法
type HoneypotApi struct {
}
