/*
 * @Description: 统一配置管理 (ini 文件 + 环境变量覆盖)
 * @Author: 安知鱼
 * @Date: 2025-09-01 20:10:33
 * @LastEditTime: 2025-09-22 14:37:09
 * @LastEditors: 安知鱼
 */
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug, KeySiteURL, KeySiteName,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyDBDebug,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeyJWTSecret, KeyTokenCookieName,
	KeySMTPHost, KeySMTPPort, KeySMTPUser, KeySMTPPassword, KeySMTPFrom, KeySMTPSSL,
}

const (
	KeyServerPort      = "System.Port"
	KeyServerDebug     = "System.Debug"
	KeySiteURL         = "System.SiteURL"
	KeySiteName        = "System.SiteName"
	KeyDBType          = "Database.Type"
	KeyDBHost          = "Database.Host"
	KeyDBPort          = "Database.Port"
	KeyDBUser          = "Database.User"
	KeyDBPassword      = "Database.Password"
	KeyDBName          = "Database.Name"
	KeyDBDebug         = "Database.Debug"
	KeyRedisAddr       = "Redis.Addr"
	KeyRedisPassword   = "Redis.Password"
	KeyRedisDB         = "Redis.DB"
	KeyJWTSecret       = "Auth.JWTSecret"
	KeyTokenCookieName = "Auth.TokenCookieName"
	KeySMTPHost        = "Mail.Host"
	KeySMTPPort        = "Mail.Port"
	KeySMTPUser        = "Mail.User"
	KeySMTPPassword    = "Mail.Password"
	KeySMTPFrom        = "Mail.From"
	KeySMTPSSL         = "Mail.SSL"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 手动加载配置：先读取 data/conf.ini 作为默认值，再用环境变量覆盖。
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := "data/conf.ini"

	// --- 步骤 1: 使用 go-ini 从文件加载配置 (作为默认值) ---
	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		} else {
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	// 如果文件成功加载，则将其中的值全部设置到 Viper 中
	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				// 特殊处理默认分区 "DEFAULT"
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("从 data/conf.ini 文件加载了默认配置。")
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	envPrefix := "MEDIAWALL"

	for _, key := range allKeys {
		// 构建环境变量名，例如 MEDIAWALL_DATABASE_HOST
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))

		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// Set 在运行期覆盖一个配置项，仅影响当前进程。
func (c *Config) Set(key, value string) {
	c.vp.Set(key, value)
}

// GetStringOrDefault 读取字符串配置，未设置时返回给定默认值。
func (c *Config) GetStringOrDefault(key, def string) string {
	if v := c.vp.GetString(key); v != "" {
		return v
	}
	return def
}

// createDefaultConfigFile 在首次启动时写出一份带注释的默认配置。
func createDefaultConfigFile(filePath string) error {
	if err := os.MkdirAll("data", os.ModePerm); err != nil {
		return err
	}

	content := `[System]
Port = 8091
Debug = false
SiteURL = http://localhost:8091
SiteName = MediaWall

[Database]
; 支持 sqlite / mysql / postgres，默认 sqlite 免配置
Type = sqlite
Host =
Port =
User =
Password =
Name =
Debug = false

[Redis]
Addr = localhost:6379
Password =
DB = 0

[Auth]
; 留空则在启动时随机生成（重启后所有会话失效）
JWTSecret =
TokenCookieName = mediawall_token

[Mail]
Host =
Port = 465
User =
Password =
From =
SSL = true
`
	return os.WriteFile(filePath, []byte(content), 0o644)
}
