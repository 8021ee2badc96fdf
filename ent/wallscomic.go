// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/wallscomic"
)

// 漫画追踪墙记录表
type WallsComic struct {
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
	Status wallscomic.Status `json:"status,omitempty"`
	// 评分，可空
	Score *float64 `json:"score,omitempty"`
	// 开始时间
	StartedAt *time.Time `json:"started_at,omitempty"`
	// 完成时间
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// 已读期数
	Issues       int `json:"issues,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WallsComic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wallscomic.FieldScore:
			values[i] = new(sql.NullFloat64)
		case wallscomic.FieldID, wallscomic.FieldArticleID, wallscomic.FieldIssues:
			values[i] = new(sql.NullInt64)
		case wallscomic.FieldUsername, wallscomic.FieldStatus:
			values[i] = new(sql.NullString)
		case wallscomic.FieldCreatedAt, wallscomic.FieldUpdatedAt, wallscomic.FieldStartedAt, wallscomic.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WallsComic fields.
func (wc *WallsComic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wallscomic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wc.ID = uint(value.Int64)
		case wallscomic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wc.CreatedAt = value.Time
			}
		case wallscomic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				wc.UpdatedAt = value.Time
			}
		case wallscomic.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				wc.Username = value.String
			}
		case wallscomic.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				wc.ArticleID = uint(value.Int64)
			}
		case wallscomic.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				wc.Status = wallscomic.Status(value.String)
			}
		case wallscomic.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				wc.Score = new(float64)
				*wc.Score = value.Float64
			}
		case wallscomic.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				wc.StartedAt = new(time.Time)
				*wc.StartedAt = value.Time
			}
		case wallscomic.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				wc.FinishedAt = new(time.Time)
				*wc.FinishedAt = value.Time
			}
		case wallscomic.FieldIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value.Valid {
				wc.Issues = int(value.Int64)
			}
		default:
			wc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WallsComic.
// This includes values selected through modifiers, order, etc.
func (wc *WallsComic) Value(name string) (ent.Value, error) {
	return wc.selectValues.Get(name)
}

// Update returns a builder for updating this WallsComic.
// Note that you need to call WallsComic.Unwrap() before calling this method if this WallsComic
// was returned from a transaction, and the transaction was committed or rolled back.
func (wc *WallsComic) Update() *WallsComicUpdateOne {
	return NewWallsComicClient(wc.config).UpdateOne(wc)
}

// Unwrap unwraps the WallsComic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wc *WallsComic) Unwrap() *WallsComic {
	_tx, ok := wc.config.driver.(*txDriver)
	if !ok {
		panic("ent: WallsComic is not a transactional entity")
	}
	wc.config.driver = _tx.drv
	return wc
}

// String implements the fmt.Stringer.
func (wc *WallsComic) String() string {
	var builder strings.Builder
	builder.WriteString("WallsComic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wc.ID))
	builder.WriteString("created_at=")
	builder.WriteString(wc.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(wc.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(wc.Username)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", wc.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", wc.Status))
	builder.WriteString(", ")
	if v := wc.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := wc.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := wc.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", wc.Issues))
	builder.WriteByte(')')
	return builder.String()
}

// WallsComics is a parsable slice of WallsComic.
type WallsComics []*WallsComic
