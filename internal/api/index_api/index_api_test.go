package index_api_test

import (
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

func TestHealthView(t *testing.T) {
	r := setupRouter(t)

	// 健康检查幂等，无副作用，进程存活期间恒定成功
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var data map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
		assert.Equal(t, "healthy", data["status"])
		assert.NotEmpty(t, data["timestamp"])
	}
}

func TestStatsView(t *testing.T) {
	r := setupRouter(t)

	require.NoError(t, global.DB.Create(&models.HoneypotModel{
		Name: "trap-1", Type: models.HoneypotTypeSSH, Host: "0.0.0.0", Port: 22,
		Status: models.HoneypotStatusActive,
	}).Error)
	require.NoError(t, global.DB.Create(&models.HoneypotModel{
		Name: "trap-2", Type: models.HoneypotTypeHTTP, Host: "0.0.0.0", Port: 80,
		Status: models.HoneypotStatusInactive,
	}).Error)
	require.NoError(t, global.DB.Create(&models.LogModel{
		HoneypotID: 1, IpAddress: "10.0.0.1", EventType: "login_attempt",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	assert.EqualValues(t, 2, data["honeypot_count"])
	assert.EqualValues(t, 1, data["active_count"])
	assert.EqualValues(t, 1, data["log_count"])
}
