package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base32"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/bookmanager/internal/validator"
	"github.com/gabriel-vasile/mimetype"
)

// MaxCoverSize bounds the size of an uploaded cover image.
const MaxCoverSize = 5 << 20

// UploadCover service stores a cover image in the configured bucket and
// returns its public URL, which the book form sends as coverImage.
func (s *service) UploadCover(ctx context.Context, filename string, content []byte) (string, error) {
	if s.uploader == nil || !s.config.UploadsEnabled() {
		return "", ErrUploadsDisabled
	}
	if len(content) > MaxCoverSize {
		return "", ErrContentTooLarge
	}
	mtype := mimetype.Detect(content)
	if !validator.Mime(mtype, "image/jpeg", "image/png") {
		return "", ErrUnsupportedMediaType
	}
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = mtype.Extension()
	}
	key := "bookcovers/" + strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)) + ext
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.S3.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentLength: int64(len(content)),
		ContentType:   aws.String(mtype.String()),
	})
	if err != nil {
		return "", err
	}
	return "https://" + s.config.S3.Bucket + ".s3." + s.config.S3.Region + ".amazonaws.com/" + key, nil
}
