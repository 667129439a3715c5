package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// Actor is the request-scoped identity derived from a validated session
// token. It is populated once at the boundary; handlers never read the
// token themselves.
type Actor struct {
	UserID string
	Name   string
	Role   string
}

const actorKey = "actor"

// GenerateToken issues a session token carrying the caller's identity.
func GenerateToken(userID, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"name":    name,
		"role":    role,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GenerateResetToken issues a short-lived token embedded in password
// reset links.
func GenerateResetToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email":   email,
		"purpose": "password_reset",
		"exp":     time.Now().Add(1 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseActor(tokenString string) (Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Actor{}, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}, errors.New("invalid token claims")
	}
	actor := Actor{}
	if v, ok := claims["user_id"].(string); ok {
		actor.UserID = v
	}
	if v, ok := claims["name"].(string); ok {
		actor.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		actor.Role = v
	}
	if actor.UserID == "" || actor.Role == "" {
		return Actor{}, errors.New("invalid token claims")
	}
	return actor, nil
}

// actorFromRequest extracts and validates the session token without
// touching the handler chain, so role checks can run before any handler
// does.
func actorFromRequest(c *gin.Context) (Actor, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return Actor{}, errors.New("Missing or invalid Authorization header")
	}
	return parseActor(strings.TrimPrefix(authHeader, "Bearer "))
}

// RequireAuth ensures a valid session token is present and stores the
// derived Actor in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireAuthWithRole ensures the session is valid and the actor has the
// given role. Both checks complete before the rest of the chain runs, so
// a wrong-role session never reaches the handler.
func RequireAuthWithRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if actor.Role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// CurrentActor returns the actor placed in the context by RequireAuth.
func CurrentActor(c *gin.Context) Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(Actor); ok {
			return actor
		}
	}
	return Actor{}
}
