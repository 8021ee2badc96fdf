// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
)

// 图书追踪墙记录表
type WallsBook struct {
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
	Status wallsbook.Status `json:"status,omitempty"`
	// 评分，可空
	Score *float64 `json:"score,omitempty"`
	// 开始时间
	StartedAt *time.Time `json:"started_at,omitempty"`
	// 完成时间
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// 已读页数
	Pages        int `json:"pages,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WallsBook) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wallsbook.FieldScore:
			values[i] = new(sql.NullFloat64)
		case wallsbook.FieldID, wallsbook.FieldArticleID, wallsbook.FieldPages:
			values[i] = new(sql.NullInt64)
		case wallsbook.FieldUsername, wallsbook.FieldStatus:
			values[i] = new(sql.NullString)
		case wallsbook.FieldCreatedAt, wallsbook.FieldUpdatedAt, wallsbook.FieldStartedAt, wallsbook.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WallsBook fields.
func (wb *WallsBook) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wallsbook.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wb.ID = uint(value.Int64)
		case wallsbook.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wb.CreatedAt = value.Time
			}
		case wallsbook.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				wb.UpdatedAt = value.Time
			}
		case wallsbook.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				wb.Username = value.String
			}
		case wallsbook.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				wb.ArticleID = uint(value.Int64)
			}
		case wallsbook.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				wb.Status = wallsbook.Status(value.String)
			}
		case wallsbook.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				wb.Score = new(float64)
				*wb.Score = value.Float64
			}
		case wallsbook.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				wb.StartedAt = new(time.Time)
				*wb.StartedAt = value.Time
			}
		case wallsbook.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				wb.FinishedAt = new(time.Time)
				*wb.FinishedAt = value.Time
			}
		case wallsbook.FieldPages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pages", values[i])
			} else if value.Valid {
				wb.Pages = int(value.Int64)
			}
		default:
			wb.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WallsBook.
// This includes values selected through modifiers, order, etc.
func (wb *WallsBook) Value(name string) (ent.Value, error) {
	return wb.selectValues.Get(name)
}

// Update returns a builder for updating this WallsBook.
// Note that you need to call WallsBook.Unwrap() before calling this method if this WallsBook
// was returned from a transaction, and the transaction was committed or rolled back.
func (wb *WallsBook) Update() *WallsBookUpdateOne {
	return NewWallsBookClient(wb.config).UpdateOne(wb)
}

// Unwrap unwraps the WallsBook entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wb *WallsBook) Unwrap() *WallsBook {
	_tx, ok := wb.config.driver.(*txDriver)
	if !ok {
		panic("ent: WallsBook is not a transactional entity")
	}
	wb.config.driver = _tx.drv
	return wb
}

// String implements the fmt.Stringer.
func (wb *WallsBook) String() string {
	var builder strings.Builder
	builder.WriteString("WallsBook(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wb.ID))
	builder.WriteString("created_at=")
	builder.WriteString(wb.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(wb.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(wb.Username)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", wb.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", wb.Status))
	builder.WriteString(", ")
	if v := wb.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := wb.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := wb.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("pages=")
	builder.WriteString(fmt.Sprintf("%v", wb.Pages))
	builder.WriteByte(')')
	return builder.String()
}

// WallsBooks is a parsable slice of WallsBook.
type WallsBooks []*WallsBook
