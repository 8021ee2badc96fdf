// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/game"
)

// 游戏表
type Game struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 作品标题，类型内唯一
	Title string `json:"title,omitempty"`
	// 由标题派生的 URL slug，创建后不可变
	Slug string `json:"slug,omitempty"`
	// 作品简介
	Description string `json:"description,omitempty"`
	// 封面图URL
	CoverURL string `json:"cover_url,omitempty"`
	// 作者列表，逗号拼接
	Authors string `json:"authors,omitempty"`
	// 出版方列表，逗号拼接
	Publishers string `json:"publishers,omitempty"`
	// 题材标签列表，逗号拼接
	Genres string `json:"genres,omitempty"`
	// 首发日期
	Premiered *time.Time `json:"premiered,omitempty"`
	// 是否为待审核草稿
	Draft bool `json:"draft,omitempty"`
	// 是否已通过审核公开展示
	Accepted bool `json:"accepted,omitempty"`
	// 贡献者用户名
	Contributor string `json:"contributor,omitempty"`
	// 游戏模式，逗号拼接，如 singlePlayer,multiPlayer
	GameMode string `json:"game_mode,omitempty"`
	// 可运行平台，逗号拼接
	Gears string `json:"gears,omitempty"`
	// 通关时长(小时)
	CompleteTime int `json:"complete_time,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Game) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case game.FieldDraft, game.FieldAccepted:
			values[i] = new(sql.NullBool)
		case game.FieldID, game.FieldCompleteTime:
			values[i] = new(sql.NullInt64)
		case game.FieldTitle, game.FieldSlug, game.FieldDescription, game.FieldCoverURL, game.FieldAuthors, game.FieldPublishers, game.FieldGenres, game.FieldContributor, game.FieldGameMode, game.FieldGears:
			values[i] = new(sql.NullString)
		case game.FieldDeletedAt, game.FieldCreatedAt, game.FieldUpdatedAt, game.FieldPremiered:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Game fields.
func (ga *Game) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case game.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ga.ID = uint(value.Int64)
		case game.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				ga.DeletedAt = new(time.Time)
				*ga.DeletedAt = value.Time
			}
		case game.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ga.CreatedAt = value.Time
			}
		case game.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ga.UpdatedAt = value.Time
			}
		case game.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				ga.Title = value.String
			}
		case game.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				ga.Slug = value.String
			}
		case game.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				ga.Description = value.String
			}
		case game.FieldCoverURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_url", values[i])
			} else if value.Valid {
				ga.CoverURL = value.String
			}
		case game.FieldAuthors:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field authors", values[i])
			} else if value.Valid {
				ga.Authors = value.String
			}
		case game.FieldPublishers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publishers", values[i])
			} else if value.Valid {
				ga.Publishers = value.String
			}
		case game.FieldGenres:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genres", values[i])
			} else if value.Valid {
				ga.Genres = value.String
			}
		case game.FieldPremiered:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field premiered", values[i])
			} else if value.Valid {
				ga.Premiered = new(time.Time)
				*ga.Premiered = value.Time
			}
		case game.FieldDraft:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field draft", values[i])
			} else if value.Valid {
				ga.Draft = value.Bool
			}
		case game.FieldAccepted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accepted", values[i])
			} else if value.Valid {
				ga.Accepted = value.Bool
			}
		case game.FieldContributor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contributor", values[i])
			} else if value.Valid {
				ga.Contributor = value.String
			}
		case game.FieldGameMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_mode", values[i])
			} else if value.Valid {
				ga.GameMode = value.String
			}
		case game.FieldGears:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gears", values[i])
			} else if value.Valid {
				ga.Gears = value.String
			}
		case game.FieldCompleteTime:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field complete_time", values[i])
			} else if value.Valid {
				ga.CompleteTime = int(value.Int64)
			}
		default:
			ga.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Game.
// This includes values selected through modifiers, order, etc.
func (ga *Game) Value(name string) (ent.Value, error) {
	return ga.selectValues.Get(name)
}

// Update returns a builder for updating this Game.
// Note that you need to call Game.Unwrap() before calling this method if this Game
// was returned from a transaction, and the transaction was committed or rolled back.
func (ga *Game) Update() *GameUpdateOne {
	return NewGameClient(ga.config).UpdateOne(ga)
}

// Unwrap unwraps the Game entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ga *Game) Unwrap() *Game {
	_tx, ok := ga.config.driver.(*txDriver)
	if !ok {
		panic("ent: Game is not a transactional entity")
	}
	ga.config.driver = _tx.drv
	return ga
}

// String implements the fmt.Stringer.
func (ga *Game) String() string {
	var builder strings.Builder
	builder.WriteString("Game(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ga.ID))
	if v := ga.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ga.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ga.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(ga.Title)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(ga.Slug)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(ga.Description)
	builder.WriteString(", ")
	builder.WriteString("cover_url=")
	builder.WriteString(ga.CoverURL)
	builder.WriteString(", ")
	builder.WriteString("authors=")
	builder.WriteString(ga.Authors)
	builder.WriteString(", ")
	builder.WriteString("publishers=")
	builder.WriteString(ga.Publishers)
	builder.WriteString(", ")
	builder.WriteString("genres=")
	builder.WriteString(ga.Genres)
	builder.WriteString(", ")
	if v := ga.Premiered; v != nil {
		builder.WriteString("premiered=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("draft=")
	builder.WriteString(fmt.Sprintf("%v", ga.Draft))
	builder.WriteString(", ")
	builder.WriteString("accepted=")
	builder.WriteString(fmt.Sprintf("%v", ga.Accepted))
	builder.WriteString(", ")
	builder.WriteString("contributor=")
	builder.WriteString(ga.Contributor)
	builder.WriteString(", ")
	builder.WriteString("game_mode=")
	builder.WriteString(ga.GameMode)
	builder.WriteString(", ")
	builder.WriteString("gears=")
	builder.WriteString(ga.Gears)
	builder.WriteString(", ")
	builder.WriteString("complete_time=")
	builder.WriteString(fmt.Sprintf("%v", ga.CompleteTime))
	builder.WriteByte(')')
	return builder.String()
}

// Games is a parsable slice of Game.
type Games []*Game
