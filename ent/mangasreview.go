// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/mangasreview"
)

// 日漫评测表
type MangasReview struct {
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
	Enjoyment    *int `json:"enjoyment,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MangasReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mangasreview.FieldID, mangasreview.FieldArticleID, mangasreview.FieldOverall, mangasreview.FieldArt, mangasreview.FieldCharacters, mangasreview.FieldStory, mangasreview.FieldEnjoyment:
			values[i] = new(sql.NullInt64)
		case mangasreview.FieldUsername, mangasreview.FieldReview, mangasreview.FieldReviewHTML:
			values[i] = new(sql.NullString)
		case mangasreview.FieldCreatedAt, mangasreview.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MangasReview fields.
func (mr *MangasReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mangasreview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			mr.ID = uint(value.Int64)
		case mangasreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				mr.CreatedAt = value.Time
			}
		case mangasreview.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				mr.UpdatedAt = value.Time
			}
		case mangasreview.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				mr.Username = value.String
			}
		case mangasreview.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				mr.ArticleID = uint(value.Int64)
			}
		case mangasreview.FieldReview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review", values[i])
			} else if value.Valid {
				mr.Review = value.String
			}
		case mangasreview.FieldReviewHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_html", values[i])
			} else if value.Valid {
				mr.ReviewHTML = value.String
			}
		case mangasreview.FieldOverall:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall", values[i])
			} else if value.Valid {
				mr.Overall = int(value.Int64)
			}
		case mangasreview.FieldArt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field art", values[i])
			} else if value.Valid {
				mr.Art = new(int)
				*mr.Art = int(value.Int64)
			}
		case mangasreview.FieldCharacters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field characters", values[i])
			} else if value.Valid {
				mr.Characters = new(int)
				*mr.Characters = int(value.Int64)
			}
		case mangasreview.FieldStory:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field story", values[i])
			} else if value.Valid {
				mr.Story = new(int)
				*mr.Story = int(value.Int64)
			}
		case mangasreview.FieldEnjoyment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field enjoyment", values[i])
			} else if value.Valid {
				mr.Enjoyment = new(int)
				*mr.Enjoyment = int(value.Int64)
			}
		default:
			mr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MangasReview.
// This includes values selected through modifiers, order, etc.
func (mr *MangasReview) Value(name string) (ent.Value, error) {
	return mr.selectValues.Get(name)
}

// Update returns a builder for updating this MangasReview.
// Note that you need to call MangasReview.Unwrap() before calling this method if this MangasReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (mr *MangasReview) Update() *MangasReviewUpdateOne {
	return NewMangasReviewClient(mr.config).UpdateOne(mr)
}

// Unwrap unwraps the MangasReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (mr *MangasReview) Unwrap() *MangasReview {
	_tx, ok := mr.config.driver.(*txDriver)
	if !ok {
		panic("ent: MangasReview is not a transactional entity")
	}
	mr.config.driver = _tx.drv
	return mr
}

// String implements the fmt.Stringer.
func (mr *MangasReview) String() string {
	var builder strings.Builder
	builder.WriteString("MangasReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", mr.ID))
	builder.WriteString("created_at=")
	builder.WriteString(mr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(mr.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(mr.Username)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", mr.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("review=")
	builder.WriteString(mr.Review)
	builder.WriteString(", ")
	builder.WriteString("review_html=")
	builder.WriteString(mr.ReviewHTML)
	builder.WriteString(", ")
	builder.WriteString("overall=")
	builder.WriteString(fmt.Sprintf("%v", mr.Overall))
	builder.WriteString(", ")
	if v := mr.Art; v != nil {
		builder.WriteString("art=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := mr.Characters; v != nil {
		builder.WriteString("characters=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := mr.Story; v != nil {
		builder.WriteString("story=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := mr.Enjoyment; v != nil {
		builder.WriteString("enjoyment=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MangasReviews is a parsable slice of MangasReview.
type MangasReviews []*MangasReview
