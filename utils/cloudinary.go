package utils

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/devevent/devevent-api/config"
)

// ImageUploader is the image store boundary: a binary payload in, a
// durable retrieval URL out. Delete is best-effort cleanup for
// orphaned uploads.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, folder string) (string, error)
	Delete(ctx context.Context, imageURL string) error
}

// CloudinaryUploader implements ImageUploader against Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cfg *config.Config) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %v", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload stores an image payload in the given folder and returns its
// secure URL. The call is bounded; an expired context surfaces as an
// ordinary error for the caller to classify.
func (u *CloudinaryUploader) Upload(ctx context.Context, data []byte, folder string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %v", err)
	}

	return resp.SecureURL, nil
}

// Delete removes an image from Cloudinary given its full URL. A miss
// comes back from the API as a non-ok result with a nil error, so the
// result is checked too; callers rely on an error here to log failed
// orphan cleanup.
func (u *CloudinaryUploader) Delete(ctx context.Context, imageURL string) error {
	publicID, err := extractPublicID(imageURL)
	if err != nil {
		return fmt.Errorf("could not extract public ID: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("delete error: %v", err)
	}
	if resp.Result != "ok" {
		return fmt.Errorf("delete failed for %s: %s", publicID, resp.Result)
	}

	return nil
}

// extractPublicID pulls the Cloudinary public ID out of a full URL:
// everything after the upload/v<version>/ segments, extension dropped.
func extractPublicID(imageURL string) (string, error) {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return "", err
	}

	// Example: https://res.cloudinary.com/demo/image/upload/v1234567890/DevEvent/abc123.jpg
	parts := strings.Split(strings.Trim(parsedURL.Path, "/"), "/")

	upload := -1
	for i, p := range parts {
		if p == "upload" {
			upload = i
			break
		}
	}
	if upload < 0 || upload == len(parts)-1 {
		return "", fmt.Errorf("invalid cloudinary URL format")
	}

	rest := parts[upload+1:]
	if isVersionSegment(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", fmt.Errorf("invalid cloudinary URL format")
	}

	publicID := strings.TrimSuffix(path.Join(rest...), path.Ext(rest[len(rest)-1]))

	return publicID, nil
}

// isVersionSegment reports whether s is a version path segment like
// "v1234567890".
func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
