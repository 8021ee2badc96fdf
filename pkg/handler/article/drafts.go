/*
 * @Description: 草稿队列聚合接口
 * @Author: 安知鱼
 * @Date: 2025-09-09 11:18:06
 * @LastEditTime: 2025-10-26 17:11:52
 * @LastEditors: 安知鱼
 */
package article

import (
	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/response"

	article_service "github.com/anzhiyu-c/mediawall-app/pkg/service/article"

	"github.com/gin-gonic/gin"
)

// DraftsHandler 聚合四种媒体类型的待审核草稿。
type DraftsHandler struct {
	registry *article_service.Registry
}

// NewDraftsHandler 是 DraftsHandler 的构造函数。
func NewDraftsHandler(registry *article_service.Registry) *DraftsHandler {
	return &DraftsHandler{registry: registry}
}

// List 按 article 查询参数返回草稿列表，缺省聚合全部类型。
// 版主/管理员看到全部草稿，普通用户只看到自己的贡献。
func (h *DraftsHandler) List(c *gin.Context) {
	articleType := constant.ArticleType(c.DefaultQuery("article", string(constant.ArticleTypeAll)))

	drafts, err := h.registry.Drafts(c.Request.Context(), middleware.RequesterFrom(c), articleType)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, drafts, "获取成功")
}
