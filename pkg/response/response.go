/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 19:44:02
 * @LastEditTime: 2025-09-05 11:21:48
 * @LastEditors: 安知鱼
 */
package response

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"

	"github.com/gin-gonic/gin"
)

// Response 是统一的API返回结构体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// SuccessWithStatus 成功响应，但允许自定义 HTTP 状态码。
// 这对于返回 201 Created 或 204 No Content 等状态非常有用。
func SuccessWithStatus(c *gin.Context, code int, data interface{}, message string) {
	if code == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// FailWithError 根据业务错误自动选择 HTTP 状态码。
// Service 层只返回 constant 中定义的标准错误，状态码的映射集中在这里完成。
func FailWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, constant.ErrConflict),
		errors.Is(err, constant.ErrTitleConflict),
		errors.Is(err, constant.ErrEmailConflict),
		errors.Is(err, constant.ErrUsernameConflict),
		errors.Is(err, constant.ErrWallConflict),
		errors.Is(err, constant.ErrReviewConflict),
		errors.Is(err, constant.ErrReviewNotQualified):
		Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, constant.ErrForbidden):
		Fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, constant.ErrUnauthorized), errors.Is(err, constant.ErrInvalidToken):
		Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, constant.ErrBadRequest):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, constant.ErrAccountBlocked), errors.Is(err, constant.ErrAccountNotEnabled):
		Fail(c, http.StatusForbidden, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, constant.ErrInternalServer.Error())
	}
}
