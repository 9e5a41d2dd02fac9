package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
)

// Claims identifica o operador que dispara sincronizações pela API
type Claims struct {
	OperatorName string `json:"operator_name"`
	RoleID       int    `json:"role_id"`
	jwt.RegisteredClaims
}
