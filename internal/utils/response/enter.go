package response

// File: beehive_server/internal/utils/response/enter.go
// Description: 统一响应格式模块，定义API接口返回数据结构及快捷响应函数
// 对外接口遵循REST状态码约定：200/201成功，400参数错误，404记录不存在，500存储错误

import (
	"beehive_server/internal/utils/validate"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应结构体
type ErrorResponse struct {
	Error string `json:"error"` // 错误消息描述
}

// MessageResponse 操作结果消息响应结构体
type MessageResponse struct {
	Message string `json:"message"` // 操作结果消息
}

// Ok 成功响应，直接返回数据体
func Ok(data any, c *gin.Context) {
	c.JSON(http.StatusOK, data)
}

// OkWithMsg 成功响应（仅返回消息）
func OkWithMsg(msg string, c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// Created 创建成功响应，返回创建后的完整数据体
func Created(data any, c *gin.Context) {
	c.JSON(http.StatusCreated, data)
}

// FailWithMsg 参数校验失败响应
func FailWithMsg(msg string, c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// FailWithError 参数校验失败响应（使用错误对象消息）
func FailWithError(err error, c *gin.Context) {
	msg := validate.ValidateError(err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// FailWithNotFound 记录不存在响应
func FailWithNotFound(msg string, c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
}

// FailWithServerError 存储层失败响应
func FailWithServerError(msg string, c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}
