/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:12:45
 * @LastEditTime: 2025-09-14 18:40:21
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrForbidden 表示无权访问，可以由 Handler 转换为 403
	ErrForbidden = errors.New("操作禁止")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")

	// ErrTitleConflict 表示作品标题已存在，可以由 Handler 转换为 409
	ErrTitleConflict = errors.New("该标题的作品已存在")

	// ErrEmailConflict 表示邮箱已被注册，可以由 Handler 转换为 409
	ErrEmailConflict = errors.New("该邮箱已被注册")

	// ErrUsernameConflict 表示用户名已被占用，可以由 Handler 转换为 409
	ErrUsernameConflict = errors.New("该用户名已被占用")

	// ErrWallConflict 表示同一用户对同一作品重复创建追踪记录，可以由 Handler 转换为 409
	ErrWallConflict = errors.New("该作品已在您的追踪墙上")

	// ErrReviewConflict 表示同一用户对同一作品重复发表评测，可以由 Handler 转换为 409
	ErrReviewConflict = errors.New("您已评测过该作品")

	// ErrReviewNotQualified 表示用户尚未在追踪墙上消费过该作品，不允许评测，可以由 Handler 转换为 409
	ErrReviewNotQualified = errors.New("只能评测追踪墙上已开始的作品")

	// ErrMailSendFailed 表示激活邮件发送失败，可以由 Handler 转换为 500
	ErrMailSendFailed = errors.New("激活邮件发送失败")

	// ErrAccountBlocked 表示账户已被封禁
	ErrAccountBlocked = errors.New("您的账户已被封禁，请联系管理员")

	// ErrAccountNotEnabled 表示账户尚未激活
	ErrAccountNotEnabled = errors.New("您的账户尚未激活，请检查您的邮箱以完成激活流程")
)
