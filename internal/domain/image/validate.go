// Package image validates uploaded image payloads before they reach the
// vision detectors: size cap and format sniffing. Decoders for the
// accepted formats are registered via blank imports.
package image

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	platformerrors "visionvoice-server-go/internal/platform/errors"
)

// Validate checks an uploaded payload and returns the sniffed format name
// (jpeg, png, gif, bmp, webp). The error messages are client-facing.
func Validate(data []byte, maxBytes int64) (string, error) {
	if len(data) == 0 {
		return "", platformerrors.New(platformerrors.KindTransport, "image.validate",
			"Nenhuma imagem enviada")
	}
	if int64(len(data)) > maxBytes {
		return "", platformerrors.New(platformerrors.KindTransport, "image.validate",
			fmt.Sprintf("Imagem muito grande. Máximo %dMB.", maxBytes/1024/1024))
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", platformerrors.Wrap(platformerrors.KindTransport, "image.validate",
			"Arquivo enviado não é uma imagem válida", err)
	}
	return format, nil
}
