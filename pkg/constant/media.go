/*
 * @Description: 媒体类型与追踪状态的常量定义
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:20:31
 * @LastEditTime: 2025-09-20 22:05:17
 * @LastEditors: 安知鱼
 */
package constant

// ArticleType 是四种媒体类型在路由和聚合结果中使用的键。
type ArticleType string

const (
	ArticleTypeBooks  ArticleType = "books"
	ArticleTypeComics ArticleType = "comics"
	ArticleTypeGames  ArticleType = "games"
	ArticleTypeMangas ArticleType = "mangas"
	// ArticleTypeAll 仅用于 drafts / 用户统计聚合接口，表示对全部类型扇出。
	ArticleTypeAll ArticleType = "all"
)

// AllArticleTypes 按固定顺序列出全部媒体类型，聚合接口按此顺序扇出。
var AllArticleTypes = []ArticleType{
	ArticleTypeBooks,
	ArticleTypeComics,
	ArticleTypeGames,
	ArticleTypeMangas,
}

// 追踪墙记录的状态枚举
const (
	WallStatusInPlans    = "IN_PLANS"
	WallStatusInProgress = "IN_PROGRESS"
	WallStatusCompleted  = "COMPLETED"
	WallStatusDropped    = "DROPPED"
)

// WallStatuses 列出全部合法的追踪状态。
var WallStatuses = []string{
	WallStatusInPlans,
	WallStatusInProgress,
	WallStatusCompleted,
	WallStatusDropped,
}

// 用户角色枚举
const (
	RoleAdmin     = "ADMIN"
	RoleModerator = "MODERATOR"
	RoleUser      = "USER"
)

// 列表查询 orderBy 参数的统计属性白名单
const (
	OrderByAvgScore   = "avgScore"
	OrderByMembers    = "members"
	OrderByScoreCount = "scoreCount"
)

// StatsOrderKeys 是 orderBy 白名单的集合形式，Handler 校验时使用。
var StatsOrderKeys = map[string]bool{
	OrderByAvgScore:   true,
	OrderByMembers:    true,
	OrderByScoreCount: true,
}
