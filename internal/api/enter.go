package api

// File: beehive_server/internal/api/enter.go
// Description: 系统Api入口

import (
	"beehive_server/internal/api/honeypot_api"
	"beehive_server/internal/api/index_api"
	"beehive_server/internal/api/log_api"
	"beehive_server/internal/api/settings_api"
)

// Api 全局Api定义
type Api struct {
	IndexApi    index_api.IndexApi
	HoneypotApi honeypot_api.HoneypotApi
	LogApi      log_api.LogApi
	SettingsApi settings_api.SettingsApi
}

var App = Api{}
