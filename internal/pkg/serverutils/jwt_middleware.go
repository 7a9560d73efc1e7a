// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims carries the fields the external identity provider embeds in
// its tokens. The subject is the user id.
type IdentityClaims struct {
	UserID          string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageUrl string
}

const identityClaimsKey = "identity_claims"

// JwtMiddleware verifies the bearer token issued by the identity provider and
// stores the caller's claims in request locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
	}

	email, _ := claims["email"].(string)
	firstName, _ := claims["first_name"].(string)
	lastName, _ := claims["last_name"].(string)
	picture, _ := claims["profile_image_url"].(string)

	ctx.Locals("user_id", sub)
	ctx.Locals(identityClaimsKey, IdentityClaims{
		UserID:          sub,
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		ProfileImageUrl: picture,
	})
	return ctx.Next()
}

// ClaimsFromCtx returns the identity claims stored by JwtMiddleware.
func ClaimsFromCtx(ctx *fiber.Ctx) (IdentityClaims, bool) {
	claims, ok := ctx.Locals(identityClaimsKey).(IdentityClaims)
	return claims, ok
}
