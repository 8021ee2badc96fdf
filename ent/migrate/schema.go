// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BooksColumns holds the columns for the "books" table.
	BooksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Unique: true, Comment: "作品标题，类型内唯一"},
		{Name: "slug", Type: field.TypeString, Comment: "由标题派生的 URL slug，创建后不可变"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "作品简介"},
		{Name: "cover_url", Type: field.TypeString, Nullable: true, Comment: "封面图URL"},
		{Name: "authors", Type: field.TypeString, Nullable: true, Comment: "作者列表，逗号拼接"},
		{Name: "publishers", Type: field.TypeString, Nullable: true, Comment: "出版方列表，逗号拼接"},
		{Name: "genres", Type: field.TypeString, Nullable: true, Comment: "题材标签列表，逗号拼接"},
		{Name: "premiered", Type: field.TypeTime, Nullable: true, Comment: "首发日期"},
		{Name: "draft", Type: field.TypeBool, Comment: "是否为待审核草稿", Default: true},
		{Name: "accepted", Type: field.TypeBool, Comment: "是否已通过审核公开展示", Default: false},
		{Name: "contributor", Type: field.TypeString, Nullable: true, Comment: "贡献者用户名"},
		{Name: "pages", Type: field.TypeInt, Comment: "页数", Default: 0},
		{Name: "series", Type: field.TypeString, Nullable: true, Comment: "所属系列名，name 过滤同时匹配此字段"},
	}
	// BooksTable holds the schema information for the "books" table.
	BooksTable = &schema.Table{
		Name:       "books",
		Comment:    "图书表",
		Columns:    BooksColumns,
		PrimaryKey: []*schema.Column{BooksColumns[0]},
	}
	// BooksReviewsColumns holds the columns for the "books_reviews" table.
	BooksReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Comment: "评测作者的用户名"},
		{Name: "article_id", Type: field.TypeUint, Comment: "被评测作品的内部ID"},
		{Name: "review", Type: field.TypeString, Size: 2147483647, Comment: "评测正文的 Markdown 原文"},
		{Name: "review_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "由 review 解析和净化后的 HTML"},
		{Name: "overall", Type: field.TypeInt, Comment: "总评分"},
		{Name: "art", Type: field.TypeInt, Nullable: true, Comment: "画面/美术分项评分"},
		{Name: "characters", Type: field.TypeInt, Nullable: true, Comment: "角色分项评分"},
		{Name: "story", Type: field.TypeInt, Nullable: true, Comment: "剧情分项评分"},
		{Name: "enjoyment", Type: field.TypeInt, Nullable: true, Comment: "乐趣分项评分"},
	}
	// BooksReviewsTable holds the schema information for the "books_reviews" table.
	BooksReviewsTable = &schema.Table{
		Name:       "books_reviews",
		Comment:    "图书评测表",
		Columns:    BooksReviewsColumns,
		PrimaryKey: []*schema.Column{BooksReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "booksreview_username_article_id",
				Unique:  true,
				Columns: []*schema.Column{BooksReviewsColumns[3], BooksReviewsColumns[4]},
			},
		},
	}
	// ComicsColumns holds the columns for the "comics" table.
	ComicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Unique: true, Comment: "作品标题，类型内唯一"},
		{Name: "slug", Type: field.TypeString, Comment: "由标题派生的 URL slug，创建后不可变"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "作品简介"},
		{Name: "cover_url", Type: field.TypeString, Nullable: true, Comment: "封面图URL"},
		{Name: "authors", Type: field.TypeString, Nullable: true, Comment: "作者列表，逗号拼接"},
		{Name: "publishers", Type: field.TypeString, Nullable: true, Comment: "出版方列表，逗号拼接"},
		{Name: "genres", Type: field.TypeString, Nullable: true, Comment: "题材标签列表，逗号拼接"},
		{Name: "premiered", Type: field.TypeTime, Nullable: true, Comment: "首发日期"},
		{Name: "draft", Type: field.TypeBool, Comment: "是否为待审核草稿", Default: true},
		{Name: "accepted", Type: field.TypeBool, Comment: "是否已通过审核公开展示", Default: false},
		{Name: "contributor", Type: field.TypeString, Nullable: true, Comment: "贡献者用户名"},
		{Name: "issues", Type: field.TypeInt, Comment: "期数", Default: 0},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true, Comment: "完结日期，finished=true 过滤非空行"},
	}
	// ComicsTable holds the schema information for the "comics" table.
	ComicsTable = &schema.Table{
		Name:       "comics",
		Comment:    "漫画表",
		Columns:    ComicsColumns,
		PrimaryKey: []*schema.Column{ComicsColumns[0]},
	}
	// ComicsReviewsColumns holds the columns for the "comics_reviews" table.
	ComicsReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Comment: "评测作者的用户名"},
		{Name: "article_id", Type: field.TypeUint, Comment: "被评测作品的内部ID"},
		{Name: "review", Type: field.TypeString, Size: 2147483647, Comment: "评测正文的 Markdown 原文"},
		{Name: "review_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "由 review 解析和净化后的 HTML"},
		{Name: "overall", Type: field.TypeInt, Comment: "总评分"},
		{Name: "art", Type: field.TypeInt, Nullable: true, Comment: "画面/美术分项评分"},
		{Name: "characters", Type: field.TypeInt, Nullable: true, Comment: "角色分项评分"},
		{Name: "story", Type: field.TypeInt, Nullable: true, Comment: "剧情分项评分"},
		{Name: "enjoyment", Type: field.TypeInt, Nullable: true, Comment: "乐趣分项评分"},
	}
	// ComicsReviewsTable holds the schema information for the "comics_reviews" table.
	ComicsReviewsTable = &schema.Table{
		Name:       "comics_reviews",
		Comment:    "漫画评测表",
		Columns:    ComicsReviewsColumns,
		PrimaryKey: []*schema.Column{ComicsReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "comicsreview_username_article_id",
				Unique:  true,
				Columns: []*schema.Column{ComicsReviewsColumns[3], ComicsReviewsColumns[4]},
			},
		},
	}
	// GamesColumns holds the columns for the "games" table.
	GamesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Unique: true, Comment: "作品标题，类型内唯一"},
		{Name: "slug", Type: field.TypeString, Comment: "由标题派生的 URL slug，创建后不可变"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "作品简介"},
		{Name: "cover_url", Type: field.TypeString, Nullable: true, Comment: "封面图URL"},
		{Name: "authors", Type: field.TypeString, Nullable: true, Comment: "作者列表，逗号拼接"},
		{Name: "publishers", Type: field.TypeString, Nullable: true, Comment: "出版方列表，逗号拼接"},
		{Name: "genres", Type: field.TypeString, Nullable: true, Comment: "题材标签列表，逗号拼接"},
		{Name: "premiered", Type: field.TypeTime, Nullable: true, Comment: "首发日期"},
		{Name: "draft", Type: field.TypeBool, Comment: "是否为待审核草稿", Default: true},
		{Name: "accepted", Type: field.TypeBool, Comment: "是否已通过审核公开展示", Default: false},
		{Name: "contributor", Type: field.TypeString, Nullable: true, Comment: "贡献者用户名"},
		{Name: "game_mode", Type: field.TypeString, Nullable: true, Comment: "游戏模式，逗号拼接，如 singlePlayer,multiPlayer"},
		{Name: "gears", Type: field.TypeString, Nullable: true, Comment: "可运行平台，逗号拼接"},
		{Name: "complete_time", Type: field.TypeInt, Comment: "通关时长(小时)", Default: 0},
	}
	// GamesTable holds the schema information for the "games" table.
	GamesTable = &schema.Table{
		Name:       "games",
		Comment:    "游戏表",
		Columns:    GamesColumns,
		PrimaryKey: []*schema.Column{GamesColumns[0]},
	}
	// GamesReviewsColumns holds the columns for the "games_reviews" table.
	GamesReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Comment: "评测作者的用户名"},
		{Name: "article_id", Type: field.TypeUint, Comment: "被评测作品的内部ID"},
		{Name: "review", Type: field.TypeString, Size: 2147483647, Comment: "评测正文的 Markdown 原文"},
		{Name: "review_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "由 review 解析和净化后的 HTML"},
		{Name: "overall", Type: field.TypeInt, Comment: "总评分"},
		{Name: "art", Type: field.TypeInt, Nullable: true, Comment: "画面/美术分项评分"},
		{Name: "characters", Type: field.TypeInt, Nullable: true, Comment: "角色分项评分"},
		{Name: "story", Type: field.TypeInt, Nullable: true, Comment: "剧情分项评分"},
		{Name: "enjoyment", Type: field.TypeInt, Nullable: true, Comment: "乐趣分项评分"},
		{Name: "graphics", Type: field.TypeInt, Nullable: true, Comment: "画质分项评分"},
		{Name: "music", Type: field.TypeInt, Nullable: true, Comment: "音乐分项评分"},
		{Name: "voicing", Type: field.TypeInt, Nullable: true, Comment: "配音分项评分"},
	}
	// GamesReviewsTable holds the schema information for the "games_reviews" table.
	GamesReviewsTable = &schema.Table{
		Name:       "games_reviews",
		Comment:    "游戏评测表",
		Columns:    GamesReviewsColumns,
		PrimaryKey: []*schema.Column{GamesReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gamesreview_username_article_id",
				Unique:  true,
				Columns: []*schema.Column{GamesReviewsColumns[3], GamesReviewsColumns[4]},
			},
		},
	}
	// MangasColumns holds the columns for the "mangas" table.
	MangasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Unique: true, Comment: "作品标题，类型内唯一"},
		{Name: "slug", Type: field.TypeString, Comment: "由标题派生的 URL slug，创建后不可变"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "作品简介"},
		{Name: "cover_url", Type: field.TypeString, Nullable: true, Comment: "封面图URL"},
		{Name: "authors", Type: field.TypeString, Nullable: true, Comment: "作者列表，逗号拼接"},
		{Name: "publishers", Type: field.TypeString, Nullable: true, Comment: "出版方列表，逗号拼接"},
		{Name: "genres", Type: field.TypeString, Nullable: true, Comment: "题材标签列表，逗号拼接"},
		{Name: "premiered", Type: field.TypeTime, Nullable: true, Comment: "首发日期"},
		{Name: "draft", Type: field.TypeBool, Comment: "是否为待审核草稿", Default: true},
		{Name: "accepted", Type: field.TypeBool, Comment: "是否已通过审核公开展示", Default: false},
		{Name: "contributor", Type: field.TypeString, Nullable: true, Comment: "贡献者用户名"},
		{Name: "volumes", Type: field.TypeInt, Comment: "卷数", Default: 0},
		{Name: "chapters", Type: field.TypeInt, Comment: "话数", Default: 0},
		{Name: "type", Type: field.TypeEnum, Comment: "作品分类", Enums: []string{"MANGA", "MANHWA", "MANHUA", "NOVEL", "ONE_SHOT", "DOUJINSHI"}, Default: "MANGA"},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true, Comment: "完结日期，finished=true 过滤非空行"},
	}
	// MangasTable holds the schema information for the "mangas" table.
	MangasTable = &schema.Table{
		Name:       "mangas",
		Comment:    "日漫表",
		Columns:    MangasColumns,
		PrimaryKey: []*schema.Column{MangasColumns[0]},
	}
	// MangasReviewsColumns holds the columns for the "mangas_reviews" table.
	MangasReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Comment: "评测作者的用户名"},
		{Name: "article_id", Type: field.TypeUint, Comment: "被评测作品的内部ID"},
		{Name: "review", Type: field.TypeString, Size: 2147483647, Comment: "评测正文的 Markdown 原文"},
		{Name: "review_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "由 review 解析和净化后的 HTML"},
		{Name: "overall", Type: field.TypeInt, Comment: "总评分"},
		{Name: "art", Type: field.TypeInt, Nullable: true, Comment: "画面/美术分项评分"},
		{Name: "characters", Type: field.TypeInt, Nullable: true, Comment: "角色分项评分"},
		{Name: "story", Type: field.TypeInt, Nullable: true, Comment: "剧情分项评分"},
		{Name: "enjoyment", Type: field.TypeInt, Nullable: true, Comment: "乐趣分项评分"},
	}
	// MangasReviewsTable holds the schema information for the "mangas_reviews" table.
	MangasReviewsTable = &schema.Table{
		Name:       "mangas_reviews",
		Comment:    "日漫评测表",
		Columns:    MangasReviewsColumns,
		PrimaryKey: []*schema.Column{MangasReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mangasreview_username_article_id",
				Unique:  true,
				Columns: []*schema.Column{MangasReviewsColumns[3], MangasReviewsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50, Comment: "用户账号"},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 100, Comment: "用户邮箱"},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeEnum, Comment: "用户角色", Enums: []string{"ADMIN", "MODERATOR", "USER"}, Default: "USER"},
		{Name: "blocked", Type: field.TypeBool, Comment: "是否被封禁，注册后默认封禁，激活时解除", Default: true},
		{Name: "enabled", Type: field.TypeBool, Comment: "是否已通过邮箱激活", Default: false},
		{Name: "confirmation_token", Type: field.TypeString, Nullable: true, Comment: "邮箱激活令牌，激活后清空"},
		{Name: "contribution_points", Type: field.TypeInt, Comment: "贡献点数，贡献的条目通过审核时累加", Default: 0},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户表",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WallsBooksColumns holds the columns for the "walls_books" table.
	WallsBooksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Comment: "记录所有者的用户名"},
		{Name: "article_id", Type: field.TypeUint, Comment: "被追踪作品的内部ID"},
		{Name: "status", Type: field.TypeEnum, Comment: "追踪状态", Enums: []string{"IN_PLANS", "IN_PROGRESS", "COMPLETED", "DROPPED"}},
		{Name: "score", Type: field.TypeFloat64, Nullable: true, Comment: "评分，可空"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true, Comment: "开始时间"},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true, Comment: "完成时间"},
		{Name: "pages", Type: field.TypeInt, Comment: "已读页数", Default: 0},
	}
	// WallsBooksTable holds the schema information for the "walls_books" table.
	WallsBooksTable = &schema.Table{
		Name:       "walls_books",
		Comment:    "图书追踪墙记录表",
		Columns:    WallsBooksColumns,
		PrimaryKey: []*schema.Column{WallsBooksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wallsbook_username_article_id",
				Unique:  true,
				Columns: []*schema.Column{WallsBooksColumns[3], WallsBooksColumns[4]},
			},
		},
	}
	// WallsComicsColumns holds the columns for the "walls_comics" table.
	WallsComicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Comment: "记录所有者的用户名"},
		{Name: "article_id", Type: field.TypeUint, Comment: "被追踪作品的内部ID"},
		{Name: "status", Type: field.TypeEnum, Comment: "追踪状态", Enums: []string{"IN_PLANS", "IN_PROGRESS", "COMPLETED", "DROPPED"}},
		{Name: "score", Type: field.TypeFloat64, Nullable: true, Comment: "评分，可空"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true, Comment: "开始时间"},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true, Comment: "完成时间"},
		{Name: "issues", Type: field.TypeInt, Comment: "已读期数", Default: 0},
	}
	// WallsComicsTable holds the schema information for the "walls_comics" table.
	WallsComicsTable = &schema.Table{
		Name:       "walls_comics",
		Comment:    "漫画追踪墙记录表",
		Columns:    WallsComicsColumns,
		PrimaryKey: []*schema.Column{WallsComicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wallscomic_username_article_id",
				Unique:  true,
				Columns: []*schema.Column{WallsComicsColumns[3], WallsComicsColumns[4]},
			},
		},
	}
	// WallsGamesColumns holds the columns for the "walls_games" table.
	WallsGamesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Comment: "记录所有者的用户名"},
		{Name: "article_id", Type: field.TypeUint, Comment: "被追踪作品的内部ID"},
		{Name: "status", Type: field.TypeEnum, Comment: "追踪状态", Enums: []string{"IN_PLANS", "IN_PROGRESS", "COMPLETED", "DROPPED"}},
		{Name: "score", Type: field.TypeFloat64, Nullable: true, Comment: "评分，可空"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true, Comment: "开始时间"},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true, Comment: "完成时间"},
		{Name: "hours_played", Type: field.TypeInt, Comment: "已游玩小时数", Default: 0},
	}
	// WallsGamesTable holds the schema information for the "walls_games" table.
	WallsGamesTable = &schema.Table{
		Name:       "walls_games",
		Comment:    "游戏追踪墙记录表",
		Columns:    WallsGamesColumns,
		PrimaryKey: []*schema.Column{WallsGamesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wallsgame_username_article_id",
				Unique:  true,
				Columns: []*schema.Column{WallsGamesColumns[3], WallsGamesColumns[4]},
			},
		},
	}
	// WallsMangasColumns holds the columns for the "walls_mangas" table.
	WallsMangasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Comment: "记录所有者的用户名"},
		{Name: "article_id", Type: field.TypeUint, Comment: "被追踪作品的内部ID"},
		{Name: "status", Type: field.TypeEnum, Comment: "追踪状态", Enums: []string{"IN_PLANS", "IN_PROGRESS", "COMPLETED", "DROPPED"}},
		{Name: "score", Type: field.TypeFloat64, Nullable: true, Comment: "评分，可空"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true, Comment: "开始时间"},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true, Comment: "完成时间"},
		{Name: "volumes", Type: field.TypeInt, Comment: "已读卷数", Default: 0},
		{Name: "chapters", Type: field.TypeInt, Comment: "已读话数", Default: 0},
	}
	// WallsMangasTable holds the schema information for the "walls_mangas" table.
	WallsMangasTable = &schema.Table{
		Name:       "walls_mangas",
		Comment:    "日漫追踪墙记录表",
		Columns:    WallsMangasColumns,
		PrimaryKey: []*schema.Column{WallsMangasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wallsmanga_username_article_id",
				Unique:  true,
				Columns: []*schema.Column{WallsMangasColumns[3], WallsMangasColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BooksTable,
		BooksReviewsTable,
		ComicsTable,
		ComicsReviewsTable,
		GamesTable,
		GamesReviewsTable,
		MangasTable,
		MangasReviewsTable,
		UsersTable,
		WallsBooksTable,
		WallsComicsTable,
		WallsGamesTable,
		WallsMangasTable,
	}
)

func init() {
}
