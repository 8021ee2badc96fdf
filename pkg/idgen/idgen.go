/*
 * @Description: 公共标识符的生成和解码服务
 * @Author: 安知鱼
 * @Date: 2025-09-01 21:02:48
 * @LastEditTime: 2025-09-18 23:11:30
 * @LastEditors: 安知鱼
 */
package idgen

import (
	"fmt"

	"github.com/sqids/sqids-go"
)

// sqidsEncoder 是用于生成和解码公共标识符的 Sqids 编码器实例。
var sqidsEncoder *sqids.Sqids

// DefaultAlphabet 是默认的字母表
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// IdentifierMinLength 是作品公共标识符的最小长度。
// 标识符与 slug 共同构成作品详情页的 URL 路径。
const IdentifierMinLength = 8

// EntityType 定义了不同实体在生成公共标识符时的类型标识。
const (
	EntityTypeUser         uint64 = 1  // 用户实体的类型标识
	EntityTypeBook         uint64 = 2  // 图书实体的类型标识
	EntityTypeComic        uint64 = 3  // 漫画(欧美)实体的类型标识
	EntityTypeGame         uint64 = 4  // 游戏实体的类型标识
	EntityTypeManga        uint64 = 5  // 日漫实体的类型标识
	EntityTypeWallsBook    uint64 = 6  // 图书追踪记录的类型标识
	EntityTypeWallsComic   uint64 = 7  // 漫画追踪记录的类型标识
	EntityTypeWallsGame    uint64 = 8  // 游戏追踪记录的类型标识
	EntityTypeWallsManga   uint64 = 9  // 日漫追踪记录的类型标识
	EntityTypeBooksReview  uint64 = 10 // 图书评测的类型标识
	EntityTypeComicsReview uint64 = 11 // 漫画评测的类型标识
	EntityTypeGamesReview  uint64 = 12 // 游戏评测的类型标识
	EntityTypeMangasReview uint64 = 13 // 日漫评测的类型标识
)

// InitSqidsEncoder 初始化 Sqids 编码器。
func InitSqidsEncoder() error {
	s, err := sqids.New(
		sqids.Options{
			MinLength: IdentifierMinLength,
			Alphabet:  DefaultAlphabet,
		},
	)
	if err != nil {
		return fmt.Errorf("初始化 Sqids 编码器失败: %w", err)
	}
	sqidsEncoder = s
	return nil
}

// GeneratePublicID 由数据库内部 ID 和实体类型生成公共标识符。
// 同一实体每次生成的结果相同，因此标识符天然不可变。
func GeneratePublicID(dbID uint, entityType uint64) (string, error) {
	if sqidsEncoder == nil {
		return "", fmt.Errorf("Sqids 编码器未初始化")
	}

	id, err := sqidsEncoder.Encode([]uint64{uint64(dbID), entityType})
	if err != nil {
		return "", fmt.Errorf("编码公共标识符失败: %w", err)
	}

	return id, nil
}

// DecodePublicID 解码公共标识符，返回内部 ID 和实体类型。
func DecodePublicID(publicID string) (dbID uint, entityType uint64, err error) {
	if sqidsEncoder == nil {
		return 0, 0, fmt.Errorf("Sqids 编码器未初始化")
	}

	numbers := sqidsEncoder.Decode(publicID)

	if len(numbers) != 2 {
		return 0, 0, fmt.Errorf("无法从公共标识符解码出预期数量的数字(期望2个，得到%d个)", len(numbers))
	}

	return uint(numbers[0]), numbers[1], nil
}
