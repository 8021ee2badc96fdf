/*
 * @Description: 贡献点重算定时任务
 * @Author: 安知鱼
 * @Date: 2025-09-11 10:02:51
 * @LastEditTime: 2025-10-27 11:12:40
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	article_service "github.com/anzhiyu-c/mediawall-app/pkg/service/article"
)

// ContributionResyncJob 按已过审条目定期重算全部用户的贡献点。
// 审核时的即时累加在并发或人工改库后可能漂移，这里以数据库为准兜底修正。
type ContributionResyncJob struct {
	users repository.UserRepository
}

// NewContributionResyncJob 是任务的构造函数。
func NewContributionResyncJob(users repository.UserRepository) *ContributionResyncJob {
	return &ContributionResyncJob{users: users}
}

// Run 是 Job 接口要求实现的方法。
func (j *ContributionResyncJob) Run() {
	corrected, err := j.users.ResyncContributionPoints(context.Background(), article_service.ContributionAward)
	if err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
		return
	}
	if corrected > 0 {
		log.Printf("任务 '%s' 业务逻辑执行完毕，共修正了 %d 个用户的贡献点。", j.Name(), corrected)
	}
}

// Name 方法让日志包装器可以打印出更有意义的任务名。
func (j *ContributionResyncJob) Name() string {
	return "ContributionResyncJob"
}
