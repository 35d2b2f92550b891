package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de acesso à API
const (
	RoleAdmin   = 1
	RoleAnalyst = 2
)

// User é um usuário da API de diagnósticos
type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	RoleID       int        `json:"role_id"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Claims são as claims do token JWT emitido no login
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
