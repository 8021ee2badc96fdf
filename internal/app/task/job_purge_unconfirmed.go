/*
 * @Description: 未激活账户清理定时任务
 * @Author: 安知鱼
 * @Date: 2025-09-11 09:40:28
 * @LastEditTime: 2025-10-27 11:08:14
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"
	"time"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
)

// unconfirmedTTL 是注册后未激活账户的保留期限，超期即清理。
const unconfirmedTTL = 7 * 24 * time.Hour

// PurgeUnconfirmedJob 负责定期清理注册后一直未点击激活邮件的账户，
// 释放被占用的邮箱和用户名。
type PurgeUnconfirmedJob struct {
	users repository.UserRepository
}

// NewPurgeUnconfirmedJob 是任务的构造函数。
func NewPurgeUnconfirmedJob(users repository.UserRepository) *PurgeUnconfirmedJob {
	return &PurgeUnconfirmedJob{users: users}
}

// Run 是 Job 接口要求实现的方法。
func (j *PurgeUnconfirmedJob) Run() {
	cutoff := time.Now().Add(-unconfirmedTTL)
	purged, err := j.users.DeleteUnconfirmedBefore(context.Background(), cutoff)
	if err != nil {
		log.Printf("任务 '%s' 在执行业务逻辑时捕获到错误: %v", j.Name(), err)
		return
	}
	log.Printf("任务 '%s' 业务逻辑执行完毕，共清理了 %d 个未激活账户。", j.Name(), purged)
}

// Name 方法让日志包装器可以打印出更有意义的任务名。
func (j *PurgeUnconfirmedJob) Name() string {
	return "PurgeUnconfirmedJob"
}
