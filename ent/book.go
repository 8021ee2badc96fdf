// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/book"
)

// 图书表
type Book struct {
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
	// 页数
	Pages int `json:"pages,omitempty"`
	// 所属系列名，name 过滤同时匹配此字段
	Series       string `json:"series,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Book) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case book.FieldDraft, book.FieldAccepted:
			values[i] = new(sql.NullBool)
		case book.FieldID, book.FieldPages:
			values[i] = new(sql.NullInt64)
		case book.FieldTitle, book.FieldSlug, book.FieldDescription, book.FieldCoverURL, book.FieldAuthors, book.FieldPublishers, book.FieldGenres, book.FieldContributor, book.FieldSeries:
			values[i] = new(sql.NullString)
		case book.FieldDeletedAt, book.FieldCreatedAt, book.FieldUpdatedAt, book.FieldPremiered:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Book fields.
func (b *Book) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case book.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			b.ID = uint(value.Int64)
		case book.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				b.DeletedAt = new(time.Time)
				*b.DeletedAt = value.Time
			}
		case book.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				b.CreatedAt = value.Time
			}
		case book.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				b.UpdatedAt = value.Time
			}
		case book.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				b.Title = value.String
			}
		case book.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				b.Slug = value.String
			}
		case book.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				b.Description = value.String
			}
		case book.FieldCoverURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_url", values[i])
			} else if value.Valid {
				b.CoverURL = value.String
			}
		case book.FieldAuthors:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field authors", values[i])
			} else if value.Valid {
				b.Authors = value.String
			}
		case book.FieldPublishers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publishers", values[i])
			} else if value.Valid {
				b.Publishers = value.String
			}
		case book.FieldGenres:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genres", values[i])
			} else if value.Valid {
				b.Genres = value.String
			}
		case book.FieldPremiered:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field premiered", values[i])
			} else if value.Valid {
				b.Premiered = new(time.Time)
				*b.Premiered = value.Time
			}
		case book.FieldDraft:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field draft", values[i])
			} else if value.Valid {
				b.Draft = value.Bool
			}
		case book.FieldAccepted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accepted", values[i])
			} else if value.Valid {
				b.Accepted = value.Bool
			}
		case book.FieldContributor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contributor", values[i])
			} else if value.Valid {
				b.Contributor = value.String
			}
		case book.FieldPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value.Valid {
				b.Pages = int(value.Int64)
			}
		case book.FieldSeries:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field series", values[i])
			} else if value.Valid {
				b.Series = value.String
			}
		default:
			b.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Book.
// This includes values selected through modifiers, order, etc.
func (b *Book) Value(name string) (ent.Value, error) {
	return b.selectValues.Get(name)
}

// Update returns a builder for updating this Book.
// Note that you need to call Book.Unwrap() before calling this method if this Book
// was returned from a transaction, and the transaction was committed or rolled back.
func (b *Book) Update() *BookUpdateOne {
	return NewBookClient(b.config).UpdateOne(b)
}

// Unwrap unwraps the Book entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (b *Book) Unwrap() *Book {
	_tx, ok := b.config.driver.(*txDriver)
	if !ok {
		panic("ent: Book is not a transactional entity")
	}
	b.config.driver = _tx.drv
	return b
}

// String implements the fmt.Stringer.
func (b *Book) String() string {
	var builder strings.Builder
	builder.WriteString("Book(")
	builder.WriteString(fmt.Sprintf("id=%v, ", b.ID))
	if v := b.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(b.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(b.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(b.Title)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(b.Slug)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(b.Description)
	builder.WriteString(", ")
	builder.WriteString("cover_url=")
	builder.WriteString(b.CoverURL)
	builder.WriteString(", ")
	builder.WriteString("authors=")
	builder.WriteString(b.Authors)
	builder.WriteString(", ")
	builder.WriteString("publishers=")
	builder.WriteString(b.Publishers)
	builder.WriteString(", ")
	builder.WriteString("genres=")
	builder.WriteString(b.Genres)
	builder.WriteString(", ")
	if v := b.Premiered; v != nil {
		builder.WriteString("premiered=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("draft=")
	builder.WriteString(fmt.Sprintf("%v", b.Draft))
	builder.WriteString(", ")
	builder.WriteString("accepted=")
	builder.WriteString(fmt.Sprintf("%v", b.Accepted))
	builder.WriteString(", ")
	builder.WriteString("contributor=")
	builder.WriteString(b.Contributor)
	builder.WriteString(", ")
	builder.WriteString("pages=")
	builder.WriteString(fmt.Sprintf("%v", b.Pages))
	builder.WriteString(", ")
	builder.WriteString("series=")
	builder.WriteString(b.Series)
	builder.WriteByte(')')
	return builder.String()
}

// Books is a parsable slice of Book.
type Books []*Book
