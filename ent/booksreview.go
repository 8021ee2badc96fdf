// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
)

// 图书评测表
type BooksReview struct {
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
func (*BooksReview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case booksreview.FieldID, booksreview.FieldArticleID, booksreview.FieldOverall, booksreview.FieldArt, booksreview.FieldCharacters, booksreview.FieldStory, booksreview.FieldEnjoyment:
			values[i] = new(sql.NullInt64)
		case booksreview.FieldUsername, booksreview.FieldReview, booksreview.FieldReviewHTML:
			values[i] = new(sql.NullString)
		case booksreview.FieldCreatedAt, booksreview.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BooksReview fields.
func (br *BooksReview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case booksreview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			br.ID = uint(value.Int64)
		case booksreview.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				br.CreatedAt = value.Time
			}
		case booksreview.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				br.UpdatedAt = value.Time
			}
		case booksreview.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				br.Username = value.String
			}
		case booksreview.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				br.ArticleID = uint(value.Int64)
			}
		case booksreview.FieldReview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review", values[i])
			} else if value.Valid {
				br.Review = value.String
			}
		case booksreview.FieldReviewHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_html", values[i])
			} else if value.Valid {
				br.ReviewHTML = value.String
			}
		case booksreview.FieldOverall:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall", values[i])
			} else if value.Valid {
				br.Overall = int(value.Int64)
			}
		case booksreview.FieldArt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field art", values[i])
			} else if value.Valid {
				br.Art = new(int)
				*br.Art = int(value.Int64)
			}
		case booksreview.FieldCharacters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field characters", values[i])
			} else if value.Valid {
				br.Characters = new(int)
				*br.Characters = int(value.Int64)
			}
		case booksreview.FieldStory:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field story", values[i])
			} else if value.Valid {
				br.Story = new(int)
				*br.Story = int(value.Int64)
			}
		case booksreview.FieldEnjoyment:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field enjoyment", values[i])
			} else if value.Valid {
				br.Enjoyment = new(int)
				*br.Enjoyment = int(value.Int64)
			}
		default:
			br.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BooksReview.
// This includes values selected through modifiers, order, etc.
func (br *BooksReview) Value(name string) (ent.Value, error) {
	return br.selectValues.Get(name)
}

// Update returns a builder for updating this BooksReview.
// Note that you need to call BooksReview.Unwrap() before calling this method if this BooksReview
// was returned from a transaction, and the transaction was committed or rolled back.
func (br *BooksReview) Update() *BooksReviewUpdateOne {
	return NewBooksReviewClient(br.config).UpdateOne(br)
}

// Unwrap unwraps the BooksReview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (br *BooksReview) Unwrap() *BooksReview {
	_tx, ok := br.config.driver.(*txDriver)
	if !ok {
		panic("ent: BooksReview is not a transactional entity")
	}
	br.config.driver = _tx.drv
	return br
}

// String implements the fmt.Stringer.
func (br *BooksReview) String() string {
	var builder strings.Builder
	builder.WriteString("BooksReview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", br.ID))
	builder.WriteString("created_at=")
	builder.WriteString(br.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(br.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(br.Username)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", br.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("review=")
	builder.WriteString(br.Review)
	builder.WriteString(", ")
	builder.WriteString("review_html=")
	builder.WriteString(br.ReviewHTML)
	builder.WriteString(", ")
	builder.WriteString("overall=")
	builder.WriteString(fmt.Sprintf("%v", br.Overall))
	builder.WriteString(", ")
	if v := br.Art; v != nil {
		builder.WriteString("art=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := br.Characters; v != nil {
		builder.WriteString("characters=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := br.Story; v != nil {
		builder.WriteString("story=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := br.Enjoyment; v != nil {
		builder.WriteString("enjoyment=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// BooksReviews is a parsable slice of BooksReview.
type BooksReviews []*BooksReview
