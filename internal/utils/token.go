package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tetteam4/swimming-project/config"
)

const (
	AccessTokenLifetime  = time.Hour * 72
	RefreshTokenLifetime = time.Hour * 24 * 7
)

// GenerateToken issues a signed access token for the given user.
func GenerateToken(userID uint, isStaff, isSuperuser bool) (string, error) {
	return signToken(jwt.MapClaims{
		"user_id":      userID,
		"is_staff":     isStaff,
		"is_superuser": isSuperuser,
		"token_type":   "access",
		"exp":          time.Now().Add(AccessTokenLifetime).Unix(),
	})
}

// GenerateRefreshToken issues a signed refresh token for the given user.
func GenerateRefreshToken(userID uint) (string, error) {
	return signToken(jwt.MapClaims{
		"user_id":    userID,
		"token_type": "refresh",
		"exp":        time.Now().Add(RefreshTokenLifetime).Unix(),
	})
}

func signToken(claims jwt.MapClaims) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ValidateRefreshToken validates a refresh token and returns the user id it
// was issued for.
func ValidateRefreshToken(tokenString string) (uint, error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != "refresh" {
		return 0, fmt.Errorf("not a refresh token")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user ID in token")
	}

	return uint(userIDFloat), nil
}

func ExtractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header is required")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", fmt.Errorf("bearer token not found")
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}
