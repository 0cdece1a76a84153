package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
)

const (
	AvatarSize        = 256
	AvatarContentType = "image/webp"
	maxAvatarBytes    = 5 << 20
	// limite de lado antes de decodificar; um PNG pequeno pode declarar 12000x12000
	maxAvatarSide = 4096
)

var ErrInvalidImage = httperr.ErrBusiness("invalid_image")

// EncodeAvatar decodifica JPEG/PNG, reduz para caber em 256x256 mantendo a proporção
// e devolve em WebP.
func EncodeAvatar(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxAvatarBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "avatar: read")
	}
	if len(raw) > maxAvatarBytes {
		return nil, ErrInvalidImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxAvatarSide || cfg.Height > maxAvatarSide {
		return nil, ErrInvalidImage
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrInvalidImage
	}

	w, h := fit(b.Dx(), b.Dy(), AvatarSize)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 82}); err != nil {
		return nil, errors.Wrap(err, "avatar: encode webp")
	}
	return buf.Bytes(), nil
}

// fit nunca amplia imagens menores que o limite.
func fit(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		return max, maxInt(1, h*max/w)
	}
	return maxInt(1, w*max/h), max
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func AvatarKey(userID uuid.UUID) string {
	return fmt.Sprintf("avatars/%s/%s.webp", userID, uuid.NewString())
}
