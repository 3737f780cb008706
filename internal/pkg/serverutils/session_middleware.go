package serverutils

import (
	"fmt"
	"strings"

	"notehub-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const sessionUserKey = "session_user"

// SessionCookieName is the cookie the auth provider sets alongside the
// Authorization header flow.
const SessionCookieName = "session_token"

// SessionMiddleware verifies session tokens issued by the external auth
// provider (HS256, shared secret) and attaches the session user to the
// request. It never rejects: a missing or invalid token simply leaves the
// user unset, and services fail Unauthenticated before touching the store.
func SessionMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := bearerToken(ctx)
		if tokenStr == "" {
			tokenStr = ctx.Cookies(SessionCookieName)
		}
		if tokenStr == "" {
			return ctx.Next()
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Next()
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Next()
		}

		userId, _ := claims["sub"].(string)
		if userId == "" {
			return ctx.Next()
		}
		name, _ := claims["name"].(string)

		ctx.Locals(sessionUserKey, &entity.User{Id: userId, Name: name})
		return ctx.Next()
	}
}

// SessionUser returns the authenticated user for the request, or nil when
// the request carried no valid session.
func SessionUser(ctx *fiber.Ctx) *entity.User {
	user, ok := ctx.Locals(sessionUserKey).(*entity.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return authHeader[len("Bearer "):]
}
