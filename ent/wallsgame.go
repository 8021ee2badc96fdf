// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
)

// 游戏追踪墙记录表
type WallsGame struct {
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
	Status wallsgame.Status `json:"status,omitempty"`
	// 评分，可空
	Score *float64 `json:"score,omitempty"`
	// 开始时间
	StartedAt *time.Time `json:"started_at,omitempty"`
	// 完成时间
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// 已游玩小时数
	HoursPlayed  int `json:"hours_played,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WallsGame) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wallsgame.FieldScore:
			values[i] = new(sql.NullFloat64)
		case wallsgame.FieldID, wallsgame.FieldArticleID, wallsgame.FieldHoursPlayed:
			values[i] = new(sql.NullInt64)
		case wallsgame.FieldUsername, wallsgame.FieldStatus:
			values[i] = new(sql.NullString)
		case wallsgame.FieldCreatedAt, wallsgame.FieldUpdatedAt, wallsgame.FieldStartedAt, wallsgame.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WallsGame fields.
func (wg *WallsGame) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wallsgame.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			wg.ID = uint(value.Int64)
		case wallsgame.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wg.CreatedAt = value.Time
			}
		case wallsgame.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				wg.UpdatedAt = value.Time
			}
		case wallsgame.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				wg.Username = value.String
			}
		case wallsgame.FieldArticleID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field article_id", values[i])
			} else if value.Valid {
				wg.ArticleID = uint(value.Int64)
			}
		case wallsgame.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				wg.Status = wallsgame.Status(value.String)
			}
		case wallsgame.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				wg.Score = new(float64)
				*wg.Score = value.Float64
			}
		case wallsgame.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				wg.StartedAt = new(time.Time)
				*wg.StartedAt = value.Time
			}
		case wallsgame.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				wg.FinishedAt = new(time.Time)
				*wg.FinishedAt = value.Time
			}
		case wallsgame.FieldHoursPlayed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hours_played", values[i])
			} else if value.Valid {
				wg.HoursPlayed = int(value.Int64)
			}
		default:
			wg.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WallsGame.
// This includes values selected through modifiers, order, etc.
func (wg *WallsGame) Value(name string) (ent.Value, error) {
	return wg.selectValues.Get(name)
}

// Update returns a builder for updating this WallsGame.
// Note that you need to call WallsGame.Unwrap() before calling this method if this WallsGame
// was returned from a transaction, and the transaction was committed or rolled back.
func (wg *WallsGame) Update() *WallsGameUpdateOne {
	return NewWallsGameClient(wg.config).UpdateOne(wg)
}

// Unwrap unwraps the WallsGame entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wg *WallsGame) Unwrap() *WallsGame {
	_tx, ok := wg.config.driver.(*txDriver)
	if !ok {
		panic("ent: WallsGame is not a transactional entity")
	}
	wg.config.driver = _tx.drv
	return wg
}

// String implements the fmt.Stringer.
func (wg *WallsGame) String() string {
	var builder strings.Builder
	builder.WriteString("WallsGame(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wg.ID))
	builder.WriteString("created_at=")
	builder.WriteString(wg.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(wg.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(wg.Username)
	builder.WriteString(", ")
	builder.WriteString("article_id=")
	builder.WriteString(fmt.Sprintf("%v", wg.ArticleID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", wg.Status))
	builder.WriteString(", ")
	if v := wg.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := wg.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := wg.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("hours_played=")
	builder.WriteString(fmt.Sprintf("%v", wg.HoursPlayed))
	builder.WriteByte(')')
	return builder.String()
}

// WallsGames is a parsable slice of WallsGame.
type WallsGames []*WallsGame
