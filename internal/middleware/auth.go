package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/sessions"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/token"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextTokenID  = "tokenID"
	ContextTokenExp = "tokenExp"
)

const sessionMessage = "Sessão inválida. Faça login novamente."

// Accounts confirma a cada requisição que a conta do token segue ativa.
// O perfil do banco vale mais que o papel gravado no token.
type Accounts interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

func AuthMiddleware(
	tokens *token.Issuer,
	revoked sessions.Store,
	accounts Accounts,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", sessionMessage)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", sessionMessage)
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", sessionMessage)
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			// sem o store não dá para garantir o logout; falha fechada
			log.Error().Err(err).Msg("revocation lookup failed")
			httperr.Internal(c, "internal_error", "Erro inesperado. Tente novamente.")
			return
		}
		if isRevoked {
			httperr.Unauthorized(c, "token_revoked", sessionMessage)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", sessionMessage)
			return
		}

		account, err := accounts.FindByID(c.Request.Context(), userID)
		if err != nil {
			if httperr.IsBusiness(err, "profile_not_found") {
				httperr.Unauthorized(c, "invalid_token", sessionMessage)
				return
			}
			log.Error().Err(err).Msg("account lookup failed")
			httperr.Internal(c, "internal_error", "Erro inesperado. Tente novamente.")
			return
		}
		if !account.Active {
			httperr.Respond(c, httperr.ErrBusiness("account_disabled"))
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, profile.Role(account.Role))
		c.Set(ContextTokenID, claims.ID)
		c.Set(ContextTokenExp, claims.ExpiresAt.Time)

		c.Next()
	}
}

// RequireAdmin fecha as rotas de administração. Roda depois do AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Actor(c).IsAdmin() {
			httperr.Forbidden(c, "admin_only", "Acesso restrito a administradores.")
			return
		}
		c.Next()
	}
}

// Actor monta o ator das consultas a partir do token validado.
func Actor(c *gin.Context) access.Actor {
	var a access.Actor
	if v, ok := c.Get(ContextUserID); ok {
		a.UserID, _ = v.(uuid.UUID)
	}
	if v, ok := c.Get(ContextUserRole); ok {
		a.Role, _ = v.(profile.Role)
	}
	return a
}

// Session devolve jti e expiração do token atual, usados no logout.
func Session(c *gin.Context) (string, time.Time) {
	return c.GetString(ContextTokenID), c.GetTime(ContextTokenExp)
}
