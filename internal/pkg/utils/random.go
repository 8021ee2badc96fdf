/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 21:24:40
 * @LastEditTime: 2025-09-01 21:24:47
 * @LastEditors: 安知鱼
 */
package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandomString 生成指定长度的随机字符串
func GenerateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	// 使用 Base64 URL 编码，避免特殊字符问题
	return base64.URLEncoding.EncodeToString(bytes)[:length], nil
}
