package card

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"

	"github.com/arcanaland/pokecard/internal"
)

// SpriteSource downloads sprite image bytes.
type SpriteSource interface {
	FetchSprite(ctx context.Context, url string) ([]byte, error)
}

// loadSprite fetches and decodes the sprite behind url and scales it to a
// size x size square. Any failure means the card shows a placeholder.
func loadSprite(ctx context.Context, src SpriteSource, url string, size int) (image.Image, error) {
	if url == "" {
		return nil, internal.NewMissingParamError("sprite url")
	}
	if src == nil {
		return nil, internal.NewMissingParamError("sprite source")
	}

	data, err := src.FetchSprite(ctx, url)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, internal.NewAssetDecodeError("decoding sprite", err)
	}
	if img.Bounds().Empty() {
		return nil, internal.NewAssetDecodeError("decoding sprite", image.ErrFormat)
	}

	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3), nil
}
