// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
)

// 游戏评测表
type GamesReview struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 评测作者的用户名
	Username string `json:"username,omitempty"`
	// 被评测作品的内部ID
	ArticleID uint `json:"article_id,omitempty"`
	// 评测正文的 Markdown 原文
	Review string `json:"review,omitempty"`
	// 由 review 解析和净化后的 HTML
	ReviewHTML string `json:"review_html,omitempty"`
	// 总评分
	Overall int `json:"overall,omitempty"`
	// 画面/美术分项评分
	Art *int `json:"art,omitempty"`
	// 角色分项评分
	Characters *int `json:"characters,omitempty"`
	// 剧情分项评分
	Story *int `json:"story,omitempty"`
	// 乐趣分项评分
	Enjoyment *int `json:"enjoyment,omitempty"`
	// 画质分项评分
	Graphics *int `json:"graphics,omitempty"`
	// 音乐分项评分
	Music *int `json:"music,omitempty"`
	// 配音分项评分
	Voicing      *int `json:"voicing,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GamesReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gamesreview.FieldID, gamesreview.FieldArticleID, gamesreview.FieldOverall, gamesreview.FieldArt, gamesreview.FieldCharacters, gamesreview.FieldStory, gamesreview.FieldEnjoyment, gamesreview.FieldGraphics, gamesreview.FieldMusic, gamesreview.FieldVoicing:
			values[i] = new(sql.NullInt64)
		case gamesreview.FieldUsername, gamesreview.FieldReview, gamesreview.FieldReviewHTML:
			values[i] = new(sql.NullString)
		case gamesreview.FieldCreatedAt, gamesreview.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GamesReview fields.
func (gr *GamesReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gamesreview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			gr.ID = uint(value.Int64)
		case gamesreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				gr.CreatedAt = value.Time
			}
		case gamesreview.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				gr.UpdatedAt = value.Time
			}
		case gamesreview.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				gr.Username = value.String
			}
		case gamesreview.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				gr.ArticleID = uint(value.Int64)
			}
		case gamesreview.FieldReview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review", values[i])
			} else if value.Valid {
				gr.Review = value.String
			}
		case gamesreview.FieldReviewHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_html", values[i])
			} else if value.Valid {
				gr.ReviewHTML = value.String
			}
		case gamesreview.FieldOverall:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall", values[i])
			} else if value.Valid {
				gr.Overall = int(value.Int64)
			}
		case gamesreview.FieldArt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field art", values[i])
			} else if value.Valid {
				gr.Art = new(int)
				*gr.Art = int(value.Int64)
			}
		case gamesreview.FieldCharacters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field characters", values[i])
			} else if value.Valid {
				gr.Characters = new(int)
				*gr.Characters = int(value.Int64)
			}
		case gamesreview.FieldStory:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field story", values[i])
			} else if value.Valid {
				gr.Story = new(int)
				*gr.Story = int(value.Int64)
			}
		case gamesreview.FieldEnjoyment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field enjoyment", values[i])
			} else if value.Valid {
				gr.Enjoyment = new(int)
				*gr.Enjoyment = int(value.Int64)
			}
		case gamesreview.FieldGraphics:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field graphics", values[i])
			} else if value.Valid {
				gr.Graphics = new(int)
				*gr.Graphics = int(value.Int64)
			}
		case gamesreview.FieldMusic:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field music", values[i])
			} else if value.Valid {
				gr.Music = new(int)
				*gr.Music = int(value.Int64)
			}
		case gamesreview.FieldVoicing:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field voicing", values[i])
			} else if value.Valid {
				gr.Voicing = new(int)
				*gr.Voicing = int(value.Int64)
			}
		default:
			gr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GamesReview.
// This includes values selected through modifiers, order, etc.
func (gr *GamesReview) Value(name string) (ent.Value, error) {
	return gr.selectValues.Get(name)
}

// Update returns a builder for updating this GamesReview.
// Note that you need to call GamesReview.Unwrap() before calling this method if this GamesReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (gr *GamesReview) Update() *GamesReviewUpdateOne {
	return NewGamesReviewClient(gr.config).UpdateOne(gr)
}

// Unwrap unwraps the GamesReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (gr *GamesReview) Unwrap() *GamesReview {
	_tx, ok := gr.config.driver.(*txDriver)
	if !ok {
		panic("ent: GamesReview is not a transactional entity")
	}
	gr.config.driver = _tx.drv
	return gr
}

// String implements the fmt.Stringer.
func (gr *GamesReview) String() string {
	var builder strings.Builder
	builder.WriteString("GamesReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", gr.ID))
	builder.WriteString("created_at=")
	builder.WriteString(gr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(gr.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(gr.Username)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", gr.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("review=")
	builder.WriteString(gr.Review)
	builder.WriteString(", ")
	builder.WriteString("review_html=")
	builder.WriteString(gr.ReviewHTML)
	builder.WriteString(", ")
	builder.WriteString("overall=")
	builder.WriteString(fmt.Sprintf("%v", gr.Overall))
	builder.WriteString(", ")
	if v := gr.Art; v != nil {
		builder.WriteString("art=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := gr.Characters; v != nil {
		builder.WriteString("characters=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := gr.Story; v != nil {
		builder.WriteString("story=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := gr.Enjoyment; v != nil {
		builder.WriteString("enjoyment=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := gr.Graphics; v != nil {
		builder.WriteString("graphics=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := gr.Music; v != nil {
		builder.WriteString("music=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := gr.Voicing; v != nil {
		builder.WriteString("voicing=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// GamesReviews is a parsable slice of GamesReview.
type GamesReviews []*GamesReview
