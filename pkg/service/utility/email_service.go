/*
 * @Description: 业务邮件服务
 * @Author: 安知鱼
 * @Date: 2025-09-10 14:25:08
 * @LastEditTime: 2025-10-25 11:40:19
 * @LastEditors: 安知鱼
 */
package utility

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/anzhiyu-c/mediawall-app/pkg/config"
)

// EmailService 定义了发送业务邮件的接口。
type EmailService interface {
	// SendActivationEmail 同步发送账户激活邮件。
	// 注册流程依赖它的返回值：发送失败时整个注册会被回滚。
	SendActivationEmail(ctx context.Context, toEmail, username, token string) error
}

// ActivationPath 是激活邮件里链接指向的接口路径，
// 必须与路由表中注册的确认接口保持一致。
const ActivationPath = "/api/auth/confirm"

// emailService 是 EmailService 接口的实现。
type emailService struct {
	cfg *config.Config
}

// NewEmailService 是 emailService 的构造函数。
func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{cfg: cfg}
}

var activationBodyTpl = template.Must(template.New("activation").Parse(`<p>你好，{{.Username}}！</p>
<p>感谢注册 {{.SiteName}}。请点击下面的链接激活你的账户：</p>
<p><a href="{{.ActivateLink}}">{{.ActivateLink}}</a></p>
<p>如果这不是你的操作，请忽略这封邮件。未激活的账户会在 7 天后自动清理。</p>`))

// SendActivationEmail 发送账户激活邮件。
func (s *emailService) SendActivationEmail(ctx context.Context, toEmail, username, token string) error {
	siteName := s.cfg.GetStringOrDefault(config.KeySiteName, "MediaWall")
	siteURL := s.cfg.GetString(config.KeySiteURL)
	if siteURL == "" || siteURL == "https://" || siteURL == "http://" {
		log.Printf("[邮件服务] 站点URL未正确配置（当前值: %s），使用默认值 http://localhost:8091", siteURL)
		siteURL = "http://localhost:8091"
	}
	siteURL = strings.TrimRight(siteURL, "/")

	activateLink := activationLink(siteURL, token)
	data := map[string]string{
		"Username":     username,
		"SiteName":     siteName,
		"ActivateLink": activateLink,
	}

	var body bytes.Buffer
	if err := activationBodyTpl.Execute(&body, data); err != nil {
		return fmt.Errorf("渲染激活邮件正文失败: %w", err)
	}
	subject := fmt.Sprintf("激活你的「%s」账户", siteName)
	return s.send(toEmail, subject, body.String())
}

// activationLink 拼出完整的激活链接，siteURL 不带末尾斜杠。
func activationLink(siteURL, token string) string {
	return fmt.Sprintf("%s%s?token=%s", siteURL, ActivationPath, url.QueryEscape(token))
}

// send 是底层的 SMTP 发送实现，支持 SSL 与 STARTTLS 两种握手方式。
func (s *emailService) send(to, subject, body string) error {
	host := s.cfg.GetString(config.KeySMTPHost)
	portStr := s.cfg.GetString(config.KeySMTPPort)
	username := s.cfg.GetString(config.KeySMTPUser)
	password := s.cfg.GetString(config.KeySMTPPassword)
	senderEmail := s.cfg.GetStringOrDefault(config.KeySMTPFrom, username)
	forceSSL := s.cfg.GetBool(config.KeySMTPSSL)

	if host == "" {
		return fmt.Errorf("SMTP服务未配置，无法发送邮件")
	}
	if _, err := strconv.Atoi(portStr); err != nil {
		return fmt.Errorf("SMTP端口配置无效 '%s': %w", portStr, err)
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.cfg.GetStringOrDefault(config.KeySiteName, "MediaWall"), senderEmail),
		"To":           to,
		"Subject":      subject,
		"Content-Type": "text/html; charset=UTF-8",
	}
	var messageBuilder strings.Builder
	for k, v := range headers {
		messageBuilder.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	messageBuilder.WriteString("\r\n")
	messageBuilder.WriteString(body)
	message := []byte(messageBuilder.String())

	auth := smtp.PlainAuth("", username, password, host)
	addr := net.JoinHostPort(host, portStr)

	if forceSSL {
		if err := sendMailSSL(addr, auth, senderEmail, []string{to}, message); err != nil {
			log.Printf("错误: [SSL] 发送邮件到 %s 失败: %v", to, err)
			return err
		}
		return nil
	}

	// 使用带超时的拨号（15秒超时）
	conn, err := net.DialTimeout("tcp", addr, 15*time.Second)
	if err != nil {
		log.Printf("错误: [STARTTLS] Dialing failed: %v", err)
		return err
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		log.Printf("错误: [STARTTLS] 创建SMTP客户端失败: %v", err)
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: true,
		}
		if err = c.StartTLS(tlsConfig); err != nil {
			log.Printf("错误: [STARTTLS] c.StartTLS failed: %v", err)
			return err
		}
	}

	if auth != nil && username != "" {
		if err = c.Auth(auth); err != nil {
			log.Printf("错误: [STARTTLS] c.Auth failed: %v", err)
			return err
		}
	}

	if err = c.Mail(senderEmail); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(message); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// sendMailSSL 通过隐式 TLS（通常为 465 端口）发送邮件。
func sendMailSSL(addr string, auth smtp.Auth, from string, to []string, message []byte) error {
	host, _, _ := net.SplitHostPort(addr)
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         host,
		MinVersion:         tls.VersionTLS12,
	}

	dialer := &net.Dialer{Timeout: 15 * time.Second}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("TLS拨号失败 (请检查端口是否正确，SSL通常使用465端口): %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return fmt.Errorf("创建SMTP客户端失败: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP认证失败: %w", err)
		}
	}
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("设置发件人失败: %w", err)
	}
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("设置收件人 %s 失败: %w", recipient, err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("获取数据写入器失败: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("写入邮件内容失败: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("关闭写入器失败: %w", err)
	}
	if err := client.Quit(); err != nil {
		log.Printf("警告: SMTP client.Quit() 执行失败: %v。这通常不影响邮件发送。", err)
	}
	return nil
}
