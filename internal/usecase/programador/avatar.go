package programador

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/mentor-scheduler/internal/httperr"
	"github.com/BruksfildServices01/mentor-scheduler/internal/infra/imaging"
)

// AvatarStore publica a imagem e devolve a URL pública.
type AvatarStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type AvatarUpload struct {
	Filename string
	Body     io.Reader
}

type encodeFunc func(r io.Reader, maxSide int) ([]byte, error)

type avatars struct {
	store  AvatarStore
	encode encodeFunc
}

func generatedAvatarURL(nombre string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(strings.TrimSpace(nombre))
}

// resolve devolve a nova foto_url, ou "" quando nada foi enviado.
func (a avatars) resolve(ctx context.Context, usuarioID uuid.UUID, nombre string, up *AvatarUpload) (string, error) {
	if up == nil || up.Body == nil {
		return "", nil
	}

	if a.store == nil {
		return generatedAvatarURL(nombre), nil
	}

	enc := a.encode
	if enc == nil {
		enc = imaging.EncodeAvatar
	}

	img, err := enc(up.Body, imaging.MaxSide)
	if err != nil {
		return "", httperr.InvalidErr("invalid_image", "No se pudo procesar la imagen.")
	}

	key := fmt.Sprintf("avatars/%s/%s.webp", usuarioID, uuid.NewString())
	return a.store.Put(ctx, key, imaging.ContentType, img)
}
