package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
)

var ErrInvalidImage = errors.New("invalid image")

// ProcessedImage is ready to upload
type ProcessedImage struct {
	Data        []byte
	ContentType string
	Ext         string
}

type ImageProcessor struct {
	MaxSize      int64 // bytes
	MaxDimension int   // longest edge after processing
}

func NewImageProcessor(maxSize int64) *ImageProcessor {
	if maxSize <= 0 {
		maxSize = 2 * 1024 * 1024
	}
	return &ImageProcessor{MaxSize: maxSize, MaxDimension: 1600}
}

// Validate accepts jpeg, png and gif up to MaxSize
func (p *ImageProcessor) Validate(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrInvalidImage)
	}
	if int64(len(data)) > p.MaxSize {
		return "", fmt.Errorf("%w: may not be greater than %d kilobytes", ErrInvalidImage, p.MaxSize/1024)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: must be an image", ErrInvalidImage)
	}
	switch format {
	case "jpeg", "png", "gif":
		return format, nil
	default:
		return "", fmt.Errorf("%w: must be a file of type: jpeg, png, jpg, gif", ErrInvalidImage)
	}
}

// Process validates and shrinks the image so its longest edge fits MaxDimension.
// GIFs are kept byte for byte so animations survive.
func (p *ImageProcessor) Process(data []byte) (*ProcessedImage, error) {
	format, err := p.Validate(data)
	if err != nil {
		return nil, err
	}
	if format == "gif" {
		return &ProcessedImage{Data: data, ContentType: "image/gif", Ext: "gif"}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode: %v", ErrInvalidImage, err)
	}

	b := img.Bounds()
	if b.Dx() > p.MaxDimension || b.Dy() > p.MaxDimension {
		img = imaging.Fit(img, p.MaxDimension, p.MaxDimension, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if format == "png" {
		if err := png.Encode(buf, img); err != nil {
			return nil, fmt.Errorf("cannot encode png: %w", err)
		}
		return &ProcessedImage{Data: buf.Bytes(), ContentType: "image/png", Ext: "png"}, nil
	}

	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("cannot encode jpeg: %w", err)
	}
	return &ProcessedImage{Data: buf.Bytes(), ContentType: "image/jpeg", Ext: "jpg"}, nil
}
