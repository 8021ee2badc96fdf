/*
 * @Description: 定时任务调度器
 * @Author: 安知鱼
 * @Date: 2025-09-11 09:20:33
 * @LastEditTime: 2025-10-27 11:18:09
 * @LastEditors: 安知鱼
 */
package task

import (
	"log/slog"
	"os"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	users  repository.UserRepository
}

// NewScheduler 是 Scheduler 的构造函数。
func NewScheduler(users repository.UserRepository) *Scheduler {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron:   c,
		logger: logger,
		users:  users,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// --- 任务1: 清理未激活账户 ---
	purgeJob := NewPurgeUnconfirmedJob(s.users)
	_, err := s.cron.AddJob("0 0 3 * * *", purgeJob)
	if err != nil {
		s.logger.Error("Failed to add 'PurgeUnconfirmedJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'PurgeUnconfirmedJob'", "schedule", "every day at 3:00:00 AM")

	// --- 任务2: 重算贡献点 ---
	resyncJob := NewContributionResyncJob(s.users)
	_, err = s.cron.AddJob("0 30 3 * * *", resyncJob)
	if err != nil {
		s.logger.Error("Failed to add 'ContributionResyncJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'ContributionResyncJob'", "schedule", "every day at 3:30:00 AM")

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}
