package authenticating

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/business-growth-api/internal/domain"
	"github.com/vfg2006/business-growth-api/pkg/utils"
)

// HashPassword gera o SHA-256 em hexadecimal, sem salt, compatível com os digests já gravados
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func VerifyPassword(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(digest)) == 1
}

// TokenIssuer assina e valida os tokens de sessão com o segredo do processo
type TokenIssuer struct {
	secret    []byte
	algorithm string
	ttl       time.Duration
}

func NewTokenIssuer(secret, algorithm string, ttl time.Duration) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, errors.Errorf("algoritmo de assinatura não suportado: %s", algorithm)
	}

	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("algoritmo de assinatura precisa ser HMAC: %s", algorithm)
	}

	return &TokenIssuer{
		secret:    []byte(secret),
		algorithm: algorithm,
		ttl:       ttl,
	}, nil
}

// Issue cria um token com sub=email, business_id e expiração
func (t *TokenIssuer) Issue(email, businessID string) (string, error) {
	jti, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar jti")
	}

	now := time.Now()
	claims := domain.Claims{
		BusinessID: businessID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.GetSigningMethod(t.algorithm), claims)
	return token.SignedString(t.secret)
}

// Validate devolve ErrExpiredToken para tokens vencidos e ErrInvalidToken para o resto
func (t *TokenIssuer) Validate(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{t.algorithm}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.BusinessID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
