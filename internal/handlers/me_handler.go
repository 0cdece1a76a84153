package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/middleware"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	profileuc "github.com/BruksfildServices01/cesta-amigo/internal/usecase/profile"
)

const maxAvatarBytes = 5 << 20

type MeHandler struct {
	profiles profile.Repository
	update   *profileuc.UpdateMe
	avatar   *profileuc.UploadAvatar
}

func NewMeHandler(
	profiles profile.Repository,
	update *profileuc.UpdateMe,
	avatar *profileuc.UploadAvatar,
) *MeHandler {
	return &MeHandler{
		profiles: profiles,
		update:   update,
		avatar:   avatar,
	}
}

type UpdateMeRequest struct {
	DisplayName    string               `json:"display_name" binding:"required"`
	Phone          string               `json:"phone"`
	Address        string               `json:"address"`
	City           string               `json:"city"`
	State          string               `json:"state"`
	PostalCode     string               `json:"postal_code"`
	DocumentNumber string               `json:"document_number"`
	Preferences    *profile.Preferences `json:"preferences"`
}

func meResponse(p *models.Profile) gin.H {
	role := profile.Role(p.Role)
	return gin.H{
		"profile":     p,
		"preferences": profile.DecodePreferences(p.Preferences),
		"role_label":  role.Label(),
		"is_admin":    role == profile.RoleAdmin,
		"is_vendedor": role == profile.RoleVendedor,
		"menu":        profile.Menu(role),
	}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p, err := h.profiles.FindByID(c.Request.Context(), middleware.Actor(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, meResponse(p))
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.Actor(c).UserID, profileuc.UpdateInput{
		DisplayName:    req.DisplayName,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		DocumentNumber: req.DocumentNumber,
		Preferences:    req.Preferences,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, meResponse(p))
}

// UploadAvatar recebe multipart com o campo "avatar".
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarBytes)

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Envie a imagem no campo avatar (até 5 MB).")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida. Envie um arquivo JPEG ou PNG.")
		return
	}
	defer f.Close()

	p, err := h.avatar.Execute(c.Request.Context(), middleware.Actor(c).UserID, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": p.AvatarURL})
}
