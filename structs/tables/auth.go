package tables

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleClient   UserRole = "client"
	RoleSupplier UserRole = "supplier"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	tableName     struct{}  `bun:"table:users,alias:u"`
	Id            uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Email         string    `json:"email" bun:"email,unique,notnull"`
	PasswordHash  string    `json:"-" bun:"password_hash,notnull"`
	FirstName     string    `json:"first_name" bun:"first_name,notnull"`
	LastName      string    `json:"last_name" bun:"last_name,notnull"`
	Role          UserRole  `json:"role" bun:"role,notnull,default:'client'"`
	IsActive      bool      `json:"is_active" bun:"is_active,notnull,default:true"`
	EmailVerified bool      `json:"email_verified" bun:"email_verified,notnull,default:false"`
	LastLogin     time.Time `json:"last_login" bun:"last_login,default:now()"`
	CreatedAt     time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
	UpdatedAt     time.Time `json:"updated_at" bun:"updated_at,notnull,default:now()"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
