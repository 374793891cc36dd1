package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/velvetrow/salon-booking/internal/config"
)

const maxWidth = 1024

// Uploader converts uploaded photos to WebP and stores them in an
// S3-compatible bucket.
type Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

func NewUploader(cfg config.MediaConfig) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
		BaseEndpoint: aws.String(cfg.S3Endpoint),
		UsePathStyle: true,
	})
	return &Uploader{
		client:     client,
		bucket:     cfg.S3Bucket,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
	}
}

// UploadPhoto reads a JPEG or PNG, downscales it to at most 1024px wide and
// stores the WebP encoding under the given prefix. Returns the public URL.
func (u *Uploader) UploadPhoto(ctx context.Context, prefix string, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("media: decode image: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("media: encode webp: %w", err)
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("media: upload: %w", err)
	}

	return u.publicBase + "/" + key, nil
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return img
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
