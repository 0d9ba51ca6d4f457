package log_api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"beehive_server/internal/config"
	"beehive_server/internal/global"
	"beehive_server/internal/models"
	"beehive_server/internal/routers"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupRouter 初始化内存数据库与路由引擎
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	global.Config = &config.Config{System: config.System{Mode: gin.TestMode}}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	global.Log = logrus.NewEntry(logger)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.HoneypotModel{}, &models.LogModel{}))
	global.DB = db

	return routers.InitRouter()
}

// doRequest 发起测试HTTP请求并返回响应记录器
func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		byteData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(byteData)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// createHoneypot 创建测试蜜罐并返回ID
func createHoneypot(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/honeypots", gin.H{
		"name": name,
		"type": "ssh",
		"port": 22,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	return uint(data["id"].(float64))
}

func TestCreateLogUnknownHoneypot(t *testing.T) {
	r := setupRouter(t)

	// 归属蜜罐不存在时返回404且不入库
	w := doRequest(t, r, http.MethodPost, "/api/logs", gin.H{
		"honeypot_id": 42,
		"ip_address":  "10.0.0.5",
		"event_type":  "connection_attempt",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	global.DB.Model(&models.LogModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateLogMissingFields(t *testing.T) {
	r := setupRouter(t)
	createHoneypot(t, r, "ssh-trap")

	cases := []gin.H{
		{"ip_address": "10.0.0.5", "event_type": "x"}, // 缺honeypot_id
		{"honeypot_id": 1, "event_type": "x"},         // 缺ip_address
		{"honeypot_id": 1, "ip_address": "10.0.0.5"},  // 缺event_type
	}
	for _, body := range cases {
		w := doRequest(t, r, http.MethodPost, "/api/logs", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestCreateLogAssignsTimestamp(t *testing.T) {
	r := setupRouter(t)
	id := createHoneypot(t, r, "ssh-trap")

	w := doRequest(t, r, http.MethodPost, "/api/logs", gin.H{
		"honeypot_id": id,
		"ip_address":  "10.0.0.5",
		"event_type":  "login_attempt",
		"details":     "root/123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.NotEmpty(t, data["timestamp"])
	assert.EqualValues(t, id, data["honeypot_id"])
	assert.Equal(t, "root/123456", data["details"])
}

func TestLogFilters(t *testing.T) {
	r := setupRouter(t)
	id1 := createHoneypot(t, r, "trap-1")
	id2 := createHoneypot(t, r, "trap-2")

	logData := []gin.H{
		{"honeypot_id": id1, "ip_address": "10.0.0.1", "event_type": "login_attempt"},
		{"honeypot_id": id1, "ip_address": "10.0.0.2", "event_type": "connection_attempt"},
		{"honeypot_id": id2, "ip_address": "10.0.0.1", "event_type": "login_attempt"},
	}
	for _, body := range logData {
		w := doRequest(t, r, http.MethodPost, "/api/logs", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// 无过滤条件返回全部日志
	w := doRequest(t, r, http.MethodGet, "/api/logs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)

	// 按来源IP精确过滤
	w = doRequest(t, r, http.MethodGet, "/api/logs?ip_address=10.0.0.1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
	for _, item := range list {
		assert.Equal(t, "10.0.0.1", item["ip_address"])
	}

	// 多条件AND组合过滤
	w = doRequest(t, r, http.MethodGet, "/api/logs?ip_address=10.0.0.1&honeypot_id=1&event_type=login_attempt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.EqualValues(t, id1, list[0]["honeypot_id"])
}

func TestLogDetailAndRemove(t *testing.T) {
	r := setupRouter(t)
	id := createHoneypot(t, r, "trap-1")

	w := doRequest(t, r, http.MethodPost, "/api/logs", gin.H{
		"honeypot_id": id,
		"ip_address":  "10.0.0.9",
		"event_type":  "command_executed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/logs/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 单条删除，不影响蜜罐本身
	w = doRequest(t, r, http.MethodDelete, "/api/logs/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/logs/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/logs/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/honeypots/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
