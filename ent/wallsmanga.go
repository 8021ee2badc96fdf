// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsmanga"
)

// 日漫追踪墙记录表
type WallsManga struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 记录所有者的用户名
	Username string `json:"username,omitempty"`
	// 被追踪作品的内部ID
	ArticleID uint `json:"article_id,omitempty"`
	// 追踪状态
	Status wallsmanga.Status `json:"status,omitempty"`
	// 评分，可空
	Score *float64 `json:"score,omitempty"`
	// 开始时间
	StartedAt *time.Time `json:"started_at,omitempty"`
	// 完成时间
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// 已读卷数
	Volumes int `json:"volumes,omitempty"`
	// 已读话数
	Chapters     int `json:"chapters,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WallsManga) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wallsmanga.FieldScore:
			values[i] = new(sql.NullFloat64)
		case wallsmanga.FieldID, wallsmanga.FieldArticleID, wallsmanga.FieldVolumes, wallsmanga.FieldChapters:
			values[i] = new(sql.NullInt64)
		case wallsmanga.FieldUsername, wallsmanga.FieldStatus:
			values[i] = new(sql.NullString)
		case wallsmanga.FieldCreatedAt, wallsmanga.FieldUpdatedAt, wallsmanga.FieldStartedAt, wallsmanga.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WallsManga fields.
func (wm *WallsManga) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wallsmanga.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wm.ID = uint(value.Int64)
		case wallsmanga.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wm.CreatedAt = value.Time
			}
		case wallsmanga.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				wm.UpdatedAt = value.Time
			}
		case wallsmanga.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				wm.Username = value.String
			}
		case wallsmanga.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				wm.ArticleID = uint(value.Int64)
			}
		case wallsmanga.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				wm.Status = wallsmanga.Status(value.String)
			}
		case wallsmanga.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				wm.Score = new(float64)
				*wm.Score = value.Float64
			}
		case wallsmanga.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				wm.StartedAt = new(time.Time)
				*wm.StartedAt = value.Time
			}
		case wallsmanga.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				wm.FinishedAt = new(time.Time)
				*wm.FinishedAt = value.Time
			}
		case wallsmanga.FieldVolumes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field volumes", values[i])
			} else if value.Valid {
				wm.Volumes = int(value.Int64)
			}
		case wallsmanga.FieldChapters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapters", values[i])
			} else if value.Valid {
				wm.Chapters = int(value.Int64)
			}
		default:
			wm.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WallsManga.
// This includes values selected through modifiers, order, etc.
func (wm *WallsManga) Value(name string) (ent.Value, error) {
	return wm.selectValues.Get(name)
}

// Update returns a builder for updating this WallsManga.
// Note that you need to call WallsManga.Unwrap() before calling this method if this WallsManga
// was returned from a transaction, and the transaction was committed or rolled back.
func (wm *WallsManga) Update() *WallsMangaUpdateOne {
	return NewWallsMangaClient(wm.config).UpdateOne(wm)
}

// Unwrap unwraps the WallsManga entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wm *WallsManga) Unwrap() *WallsManga {
	_tx, ok := wm.config.driver.(*txDriver)
	if !ok {
		panic("ent: WallsManga is not a transactional entity")
	}
	wm.config.driver = _tx.drv
	return wm
}

// String implements the fmt.Stringer.
func (wm *WallsManga) String() string {
	var builder strings.Builder
	builder.WriteString("WallsManga(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wm.ID))
	builder.WriteString("created_at=")
	builder.WriteString(wm.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(wm.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(wm.Username)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", wm.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", wm.Status))
	builder.WriteString(", ")
	if v := wm.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := wm.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := wm.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("volumes=")
	builder.WriteString(fmt.Sprintf("%v", wm.Volumes))
	builder.WriteString(", ")
	builder.WriteString("chapters=")
	builder.WriteString(fmt.Sprintf("%v", wm.Chapters))
	builder.WriteByte(')')
	return builder.String()
}

// WallsMangas is a parsable slice of WallsManga.
type WallsMangas []*WallsManga
