package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName   = "admin_users"
	EntityName  = "admin_user"
	EntityLabel = "User"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldRole      = "role"
	FieldIsActive  = "is_active"
	FieldLastLogin = "last_login"
)

// User is a back-office account. Password holds the bcrypt hash.
type User struct {
	ID        int64      `db:"id"         generated:"true"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	IsActive  bool       `db:"is_active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
