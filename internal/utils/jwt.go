package utils

import (
	"errors"
	"fmt"
	"time"

	"job_board/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of every issued token unless configured otherwise.
const DefaultTokenTTL = time.Hour

// JWTClaims custom claims for JWT
type JWTClaims struct {
	AccountID string `json:"accountId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTUtil creates a new JWTUtil. A non-positive ttl means DefaultTokenTTL.
func NewJWTUtil(secretKey string, ttl time.Duration) *JWTUtil {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTUtil{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
}

// TTL returns the lifetime of issued tokens.
func (ju *JWTUtil) TTL() time.Duration { return ju.ttl }

// GenerateToken generates a signed HS256 token for the account and role.
func (ju *JWTUtil) GenerateToken(accountID, role string) (string, error) {
	issuedAt := ju.now()
	claims := &JWTClaims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ju.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Subject:   accountID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ju.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies the signature and expiry of tokenString and returns
// its claims unchanged. Failures are apperr errors of kind Malformed,
// InvalidSignature or Expired.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithStrictDecoding(), jwt.WithoutClaimsValidation())

	claims := &JWTClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ju.secretKey, nil
	})
	if err != nil {
		return nil, classifyParseError(parser, tokenString, err)
	}

	if claims.AccountID == "" || claims.ExpiresAt == nil {
		return nil, apperr.New(apperr.KindMalformed, "token is missing required claims")
	}
	if ju.now().After(claims.ExpiresAt.Time) {
		return nil, apperr.Wrap(apperr.KindExpired, "token has expired", jwt.ErrTokenExpired)
	}
	return claims, nil
}

// classifyParseError maps a jwt parse failure onto the error taxonomy. A token
// whose header and claims decode cleanly but whose signature segment does not
// is a signature failure, not a malformed token.
func classifyParseError(parser *jwt.Parser, tokenString string, err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		if _, _, uerr := parser.ParseUnverified(tokenString, &JWTClaims{}); uerr == nil {
			return apperr.Wrap(apperr.KindInvalidSignature, "invalid token signature", err)
		}
		return apperr.Wrap(apperr.KindMalformed, "malformed token", err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return apperr.Wrap(apperr.KindInvalidSignature, "invalid token signature", err)
	default:
		return apperr.Wrap(apperr.KindMalformed, "malformed token", err)
	}
}
