package profile

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/audit"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/storage"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
)

type UploadAvatar struct {
	profiles domain.Repository
	store    storage.Store
	audit    *audit.Dispatcher
}

func NewUploadAvatar(
	profiles domain.Repository,
	store storage.Store,
	audit *audit.Dispatcher,
) *UploadAvatar {
	return &UploadAvatar{profiles: profiles, store: store, audit: audit}
}

// Execute converte a imagem para WebP 256px, sobe para o bucket e grava a URL no perfil.
func (uc *UploadAvatar) Execute(
	ctx context.Context,
	userID uuid.UUID,
	image io.Reader,
) (*models.Profile, error) {

	p, err := uc.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	encoded, err := storage.EncodeAvatar(image)
	if err != nil {
		return nil, err
	}

	url, err := uc.store.Put(ctx, storage.AvatarKey(userID), storage.AvatarContentType, encoded)
	if err != nil {
		return nil, err
	}

	p.AvatarURL = &url
	if err := uc.profiles.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &userID,
		Action:   "avatar_updated",
		Entity:   "profile",
		EntityID: &userID,
	})

	return p, nil
}
