/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:40:09
 * @LastEditTime: 2025-09-24 10:24:18
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户表"),
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("username").
			MaxLen(50).
			Unique().
			NotEmpty().
			Comment("用户账号"),
		field.String("email").
			MaxLen(100).
			Unique().
			NotEmpty().
			Comment("用户邮箱"),
		field.String("password_hash").
			MaxLen(255).
			NotEmpty().
			Sensitive(),
		field.Enum("role").
			Values("ADMIN", "MODERATOR", "USER").
			Default("USER").
			Comment("用户角色"),
		field.Bool("blocked").
			Default(true).
			Comment("是否被封禁，注册后默认封禁，激活时解除"),
		field.Bool("enabled").
			Default(false).
			Comment("是否已通过邮箱激活"),
		field.String("confirmation_token").
			Optional().
			Nillable().
			Sensitive().
			Comment("邮箱激活令牌，激活后清空"),
		field.Int("contribution_points").
			Default(0).
			NonNegative().
			Comment("贡献点数，贡献的条目通过审核时累加"),
	}
}
