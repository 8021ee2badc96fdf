// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/manga"
)

// 日漫表
type Manga struct {
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
	// 卷数
	Volumes int `json:"volumes,omitempty"`
	// 话数
	Chapters int `json:"chapters,omitempty"`
	// 作品分类
	Type manga.Type `json:"type,omitempty"`
	// 完结日期，finished=true 过滤非空行
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Manga) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case manga.FieldDraft, manga.FieldAccepted:
			values[i] = new(sql.NullBool)
		case manga.FieldID, manga.FieldVolumes, manga.FieldChapters:
			values[i] = new(sql.NullInt64)
		case manga.FieldTitle, manga.FieldSlug, manga.FieldDescription, manga.FieldCoverURL, manga.FieldAuthors, manga.FieldPublishers, manga.FieldGenres, manga.FieldContributor, manga.FieldType:
			values[i] = new(sql.NullString)
		case manga.FieldDeletedAt, manga.FieldCreatedAt, manga.FieldUpdatedAt, manga.FieldPremiered, manga.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Manga fields.
func (m *Manga) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case manga.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			m.ID = uint(value.Int64)
		case manga.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				m.DeletedAt = new(time.Time)
				*m.DeletedAt = value.Time
			}
		case manga.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				m.CreatedAt = value.Time
			}
		case manga.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				m.UpdatedAt = value.Time
			}
		case manga.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				m.Title = value.String
			}
		case manga.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				m.Slug = value.String
			}
		case manga.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				m.Description = value.String
			}
		case manga.FieldCoverURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_url", values[i])
			} else if value.Valid {
				m.CoverURL = value.String
			}
		case manga.FieldAuthors:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field authors", values[i])
			} else if value.Valid {
				m.Authors = value.String
			}
		case manga.FieldPublishers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publishers", values[i])
			} else if value.Valid {
				m.Publishers = value.String
			}
		case manga.FieldGenres:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genres", values[i])
			} else if value.Valid {
				m.Genres = value.String
			}
		case manga.FieldPremiered:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field premiered", values[i])
			} else if value.Valid {
				m.Premiered = new(time.Time)
				*m.Premiered = value.Time
			}
		case manga.FieldDraft:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field draft", values[i])
			} else if value.Valid {
				m.Draft = value.Bool
			}
		case manga.FieldAccepted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field accepted", values[i])
			} else if value.Valid {
				m.Accepted = value.Bool
			}
		case manga.FieldContributor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contributor", values[i])
			} else if value.Valid {
				m.Contributor = value.String
			}
		case manga.FieldVolumes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field volumes", values[i])
			} else if value.Valid {
				m.Volumes = int(value.Int64)
			}
		case manga.FieldChapters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapters", values[i])
			} else if value.Valid {
				m.Chapters = int(value.Int64)
			}
		case manga.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				m.Type = manga.Type(value.String)
			}
		case manga.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				m.FinishedAt = new(time.Time)
				*m.FinishedAt = value.Time
			}
		default:
			m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Manga.
// This includes values selected through modifiers, order, etc.
func (m *Manga) Value(name string) (ent.Value, error) {
	return m.selectValues.Get(name)
}

// Update returns a builder for updating this Manga.
// Note that you need to call Manga.Unwrap() before calling this method if this Manga
// was returned from a transaction, and the transaction was committed or rolled back.
func (m *Manga) Update() *MangaUpdateOne {
	return NewMangaClient(m.config).UpdateOne(m)
}

// Unwrap unwraps the Manga entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (m *Manga) Unwrap() *Manga {
	_tx, ok := m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Manga is not a transactional entity")
	}
	m.config.driver = _tx.drv
	return m
}

// String implements the fmt.Stringer.
func (m *Manga) String() string {
	var builder strings.Builder
	builder.WriteString("Manga(")
	builder.WriteString(fmt.Sprintf("id=%v, ", m.ID))
	if v := m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(m.Title)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(m.Slug)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(m.Description)
	builder.WriteString(", ")
	builder.WriteString("cover_url=")
	builder.WriteString(m.CoverURL)
	builder.WriteString(", ")
	builder.WriteString("authors=")
	builder.WriteString(m.Authors)
	builder.WriteString(", ")
	builder.WriteString("publishers=")
	builder.WriteString(m.Publishers)
	builder.WriteString(", ")
	builder.WriteString("genres=")
	builder.WriteString(m.Genres)
	builder.WriteString(", ")
	if v := m.Premiered; v != nil {
		builder.WriteString("premiered=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("draft=")
	builder.WriteString(fmt.Sprintf("%v", m.Draft))
	builder.WriteString(", ")
	builder.WriteString("accepted=")
	builder.WriteString(fmt.Sprintf("%v", m.Accepted))
	builder.WriteString(", ")
	builder.WriteString("contributor=")
	builder.WriteString(m.Contributor)
	builder.WriteString(", ")
	builder.WriteString("volumes=")
	builder.WriteString(fmt.Sprintf("%v", m.Volumes))
	builder.WriteString(", ")
	builder.WriteString("chapters=")
	builder.WriteString(fmt.Sprintf("%v", m.Chapters))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", m.Type))
	builder.WriteString(", ")
	if v := m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Mangas is a parsable slice of Manga.
type Mangas []*Manga
