package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"fairhire-backend/config"
	authutils "fairhire-backend/lib/utils/auth-utils"
	"fairhire-backend/models"
	apimodels "fairhire-backend/models/api"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}

func GetUserID(ctx *fiber.Ctx) string {
	return getStringClaim(ctx, "sub")
}

func GetCandidateID(ctx *fiber.Ctx) string {
	return getStringClaim(ctx, "candidate")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(getStringClaim(ctx, "role"))
}

func getStringClaim(ctx *fiber.Ctx, name string) string {
	claims := authutils.GetClaims(ctx)
	value, ok := claims[name].(string)
	if !ok {
		return ""
	}
	return value
}

// RoleRequired rejects requests whose token carries none of the listed roles.
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := GetUserRole(ctx)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).
			JSON(apimodels.NewError("insufficient permissions"))
	}
}

// CandidateProfileRequired guards candidate self-service routes: the token
// must belong to a candidate account with a linked profile.
func CandidateProfileRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if GetCandidateID(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).
				JSON(apimodels.NewError("candidate profile required"))
		}
		return ctx.Next()
	}
}
