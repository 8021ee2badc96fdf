// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
)

// 漫画表
type Comic struct {
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
	// 期数
	Issues int `json:"issues,omitempty"`
	// 完结日期，finished=true 过滤非空行
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Comic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case comic.FieldDraft, comic.FieldAccepted:
			values[i] = new(sql.NullBool)
		case comic.FieldID, comic.FieldIssues:
			values[i] = new(sql.NullInt64)
		case comic.FieldTitle, comic.FieldSlug, comic.FieldDescription, comic.FieldCoverURL, comic.FieldAuthors, comic.FieldPublishers, comic.FieldGenres, comic.FieldContributor:
			values[i] = new(sql.NullString)
		case comic.FieldDeletedAt, comic.FieldCreatedAt, comic.FieldUpdatedAt, comic.FieldPremiered, comic.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Comic fields.
func (c *Comic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case comic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			c.ID = uint(value.Int64)
		case comic.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				c.DeletedAt = new(time.Time)
				*c.DeletedAt = value.Time
			}
		case comic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				c.CreatedAt = value.Time
			}
		case comic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				c.UpdatedAt = value.Time
			}
		case comic.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				c.Title = value.String
			}
		case comic.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				c.Slug = value.String
			}
		case comic.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				c.Description = value.String
			}
		case comic.FieldCoverURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_url", values[i])
			} else if value.Valid {
				c.CoverURL = value.String
			}
		case comic.FieldAuthors:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field authors", values[i])
			} else if value.Valid {
				c.Authors = value.String
			}
		case comic.FieldPublishers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publishers", values[i])
			} else if value.Valid {
				c.Publishers = value.String
			}
		case comic.FieldGenres:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genres", values[i])
			} else if value.Valid {
				c.Genres = value.String
			}
		case comic.FieldPremiered:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field premiered", values[i])
			} else if value.Valid {
				c.Premiered = new(time.Time)
				*c.Premiered = value.Time
			}
		case comic.FieldDraft:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field draft", values[i])
			} else if value.Valid {
				c.Draft = value.Bool
			}
		case comic.FieldAccepted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accepted", values[i])
			} else if value.Valid {
				c.Accepted = value.Bool
			}
		case comic.FieldContributor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contributor", values[i])
			} else if value.Valid {
				c.Contributor = value.String
			}
		case comic.FieldIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value.Valid {
				c.Issues = int(value.Int64)
			}
		case comic.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				c.FinishedAt = new(time.Time)
				*c.FinishedAt = value.Time
			}
		default:
			c.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Comic.
// This includes values selected through modifiers, order, etc.
func (c *Comic) Value(name string) (ent.Value, error) {
	return c.selectValues.Get(name)
}

// Update returns a builder for updating this Comic.
// Note that you need to call Comic.Unwrap() before calling this method if this Comic
// was returned from a transaction, and the transaction was committed or rolled back.
func (c *Comic) Update() *ComicUpdateOne {
	return NewComicClient(c.config).UpdateOne(c)
}

// Unwrap unwraps the Comic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (c *Comic) Unwrap() *Comic {
	_tx, ok := c.config.driver.(*txDriver)
	if !ok {
		panic("ent: Comic is not a transactional entity")
	}
	c.config.driver = _tx.drv
	return c
}

// String implements the fmt.Stringer.
func (c *Comic) String() string {
	var builder strings.Builder
	builder.WriteString("Comic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", c.ID))
	if v := c.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(c.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(c.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(c.Title)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(c.Slug)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(c.Description)
	builder.WriteString(", ")
	builder.WriteString("cover_url=")
	builder.WriteString(c.CoverURL)
	builder.WriteString(", ")
	builder.WriteString("authors=")
	builder.WriteString(c.Authors)
	builder.WriteString(", ")
	builder.WriteString("publishers=")
	builder.WriteString(c.Publishers)
	builder.WriteString(", ")
	builder.WriteString("genres=")
	builder.WriteString(c.Genres)
	builder.WriteString(", ")
	if v := c.Premiered; v != nil {
		builder.WriteString("premiered=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("draft=")
	builder.WriteString(fmt.Sprintf("%v", c.Draft))
	builder.WriteString(", ")
	builder.WriteString("accepted=")
	builder.WriteString(fmt.Sprintf("%v", c.Accepted))
	builder.WriteString(", ")
	builder.WriteString("contributor=")
	builder.WriteString(c.Contributor)
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", c.Issues))
	builder.WriteString(", ")
	if v := c.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Comics is a parsable slice of Comic.
type Comics []*Comic
