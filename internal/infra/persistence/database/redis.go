/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 16:10:40
 * @LastEditTime: 2025-09-22 15:03:28
 * @LastEditors: 安知鱼
 */
package database

import (
	"context"
	"log"
	"strconv"

	"github.com/anzhiyu-c/mediawall-app/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 接收配置并返回 Redis 客户端或 nil（用于自动降级）。
// Redis 在本应用中只承载登出令牌黑名单；未配置或连接失败时返回 nil，
// 令牌服务会降级为进程内黑名单。
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	redisAddr := cfg.GetString(config.KeyRedisAddr)
	redisPassword := cfg.GetString(config.KeyRedisPassword)

	// 如果 Redis 地址未配置，返回 nil（这不是错误，只是没有配置）
	if redisAddr == "" {
		log.Println("⚠️  Redis 地址未配置，登出黑名单将使用进程内存")
		return nil, nil
	}

	var redisDB int
	if dbStr := cfg.GetString(config.KeyRedisDB); dbStr != "" {
		var err error
		redisDB, err = strconv.Atoi(dbStr)
		if err != nil {
			log.Printf("⚠️  无效的 Redis.DB 值 '%s': %v，登出黑名单将使用进程内存", dbStr, err)
			return nil, nil
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  连接 Redis (%s, DB %d) 失败: %v，登出黑名单将使用进程内存", redisAddr, redisDB, err)
		rdb.Close()
		return nil, nil
	}

	log.Printf("✅ 成功连接到 Redis (%s, DB %d)", redisAddr, redisDB)
	return rdb, nil
}
