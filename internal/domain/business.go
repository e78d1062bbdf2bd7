package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Business é o perfil de um negócio; também é a conta usada no login
type Business struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Industry            string    `json:"industry"`
	Description         string    `json:"description"`
	OwnerEmail          string    `json:"owner_email"`
	PasswordHash        string    `json:"-"`
	HasCompletedMetrics bool      `json:"has_completed_metrics"`
	CreatedAt           time.Time `json:"created_at"`
}

type CreateBusinessRequest struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	OwnerEmail  string `json:"owner_email"`
}

type BusinessResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerEmail  string    `json:"owner_email"`
}

func (b *Business) ToResponse() *BusinessResponse {
	return &BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Industry:    b.Industry,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		OwnerEmail:  b.OwnerEmail,
	}
}

// Profile retorna os dados do negócio usados nos prompts de IA
func (b *Business) Profile() BusinessProfile {
	return BusinessProfile{
		Name:        b.Name,
		Industry:    b.Industry,
		Description: b.Description,
	}
}

type BusinessProfile struct {
	Name        string
	Industry    string
	Description string
}

type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	BusinessID  string `json:"business_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}

type CurrentUser struct {
	BusinessID          string `json:"business_id"`
	Email               string `json:"email"`
	Name                string `json:"name"`
	Industry            string `json:"industry"`
	HasCompletedMetrics bool   `json:"has_completed_metrics"`
}

// Claims carrega o email no subject e o id do negócio
type Claims struct {
	BusinessID string `json:"business_id"`
	jwt.RegisteredClaims
}
