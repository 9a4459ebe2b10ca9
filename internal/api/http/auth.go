package httpapi

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hmraza/weatherman/internal/store"
)

// AuthConfig carries the token-signing settings for the auth routes.
type AuthConfig struct {
	Secret string
	TTL    time.Duration
}

// registerRequest is the JSON payload for /auth/register.
type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// loginRequest is the JSON payload for /auth/login.
type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterAuthRoutes wires the registration, login and profile handlers.
func RegisterAuthRoutes(app *fiber.App, users *store.UserStore, cfg AuthConfig) {
	auth := app.Group("/auth")

	auth.Post("/register", func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "email, username and password are required")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "email, username and password are required")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to register user")
		}

		if _, err := users.Create(req.Email, req.Username, string(hash)); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fiber.NewError(fiber.StatusBadRequest, "username already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to register user")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "user registered successfully",
		})
	})

	auth.Post("/login", func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
		}

		user, err := users.GetByUsername(req.Username)
		if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}

		token, err := issueToken(user.Username, cfg)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to issue token")
		}

		return c.JSON(fiber.Map{"access_token": token})
	})

	auth.Get("/profile", RequireAuth(cfg), func(c *fiber.Ctx) error {
		username, _ := c.Locals(localUserKey).(string)

		user, err := users.GetByUsername(username)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unknown user")
		}

		return c.JSON(fiber.Map{
			"email":    user.Email,
			"username": user.Username,
		})
	})
}

// localUserKey is where RequireAuth stashes the authenticated username.
const localUserKey = "auth_username"

// RequireAuth is a middleware that rejects requests lacking a valid bearer
// token and records the token's subject for downstream handlers.
func RequireAuth(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token subject")
		}

		c.Locals(localUserKey, sub)
		return c.Next()
	}
}

func issueToken(username string, cfg AuthConfig) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}
