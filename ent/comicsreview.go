// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
)

// 漫画评测表
type ComicsReview struct {
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
func (*ComicsReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case comicsreview.FieldID, comicsreview.FieldArticleID, comicsreview.FieldOverall, comicsreview.FieldArt, comicsreview.FieldCharacters, comicsreview.FieldStory, comicsreview.FieldEnjoyment:
			values[i] = new(sql.NullInt64)
		case comicsreview.FieldUsername, comicsreview.FieldReview, comicsreview.FieldReviewHTML:
			values[i] = new(sql.NullString)
		case comicsreview.FieldCreatedAt, comicsreview.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ComicsReview fields.
func (cr *ComicsReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case comicsreview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cr.ID = uint(value.Int64)
		case comicsreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cr.CreatedAt = value.Time
			}
		case comicsreview.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cr.UpdatedAt = value.Time
			}
		case comicsreview.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				cr.Username = value.String
			}
		case comicsreview.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				cr.ArticleID = uint(value.Int64)
			}
		case comicsreview.FieldReview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review", values[i])
			} else if value.Valid {
				cr.Review = value.String
			}
		case comicsreview.FieldReviewHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_html", values[i])
			} else if value.Valid {
				cr.ReviewHTML = value.String
			}
		case comicsreview.FieldOverall:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall", values[i])
			} else if value.Valid {
				cr.Overall = int(value.Int64)
			}
		case comicsreview.FieldArt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field art", values[i])
			} else if value.Valid {
				cr.Art = new(int)
				*cr.Art = int(value.Int64)
			}
		case comicsreview.FieldCharacters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field characters", values[i])
			} else if value.Valid {
				cr.Characters = new(int)
				*cr.Characters = int(value.Int64)
			}
		case comicsreview.FieldStory:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field story", values[i])
			} else if value.Valid {
				cr.Story = new(int)
				*cr.Story = int(value.Int64)
			}
		case comicsreview.FieldEnjoyment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field enjoyment", values[i])
			} else if value.Valid {
				cr.Enjoyment = new(int)
				*cr.Enjoyment = int(value.Int64)
			}
		default:
			cr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ComicsReview.
// This includes values selected through modifiers, order, etc.
func (cr *ComicsReview) Value(name string) (ent.Value, error) {
	return cr.selectValues.Get(name)
}

// Update returns a builder for updating this ComicsReview.
// Note that you need to call ComicsReview.Unwrap() before calling this method if this ComicsReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (cr *ComicsReview) Update() *ComicsReviewUpdateOne {
	return NewComicsReviewClient(cr.config).UpdateOne(cr)
}

// Unwrap unwraps the ComicsReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cr *ComicsReview) Unwrap() *ComicsReview {
	_tx, ok := cr.config.driver.(*txDriver)
	if !ok {
		panic("ent: ComicsReview is not a transactional entity")
	}
	cr.config.driver = _tx.drv
	return cr
}

// String implements the fmt.Stringer.
func (cr *ComicsReview) String() string {
	var builder strings.Builder
	builder.WriteString("ComicsReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cr.ID))
	builder.WriteString("created_at=")
	builder.WriteString(cr.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cr.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(cr.Username)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", cr.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("review=")
	builder.WriteString(cr.Review)
	builder.WriteString(", ")
	builder.WriteString("review_html=")
	builder.WriteString(cr.ReviewHTML)
	builder.WriteString(", ")
	builder.WriteString("overall=")
	builder.WriteString(fmt.Sprintf("%v", cr.Overall))
	builder.WriteString(", ")
	if v := cr.Art; v != nil {
		builder.WriteString("art=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := cr.Characters; v != nil {
		builder.WriteString("characters=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := cr.Story; v != nil {
		builder.WriteString("story=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := cr.Enjoyment; v != nil {
		builder.WriteString("enjoyment=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ComicsReviews is a parsable slice of ComicsReview.
type ComicsReviews []*ComicsReview
