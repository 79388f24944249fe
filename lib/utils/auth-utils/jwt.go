package authutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

const ServiceSubject = "onboarding-board"

// GetServiceToken токен, которым доска ходит в собственное api
func GetServiceToken(secret string, expireInSec int) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":     ServiceSubject,
		"service": true,
		"exp":     time.Now().Add(time.Second * time.Duration(expireInSec)).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}
