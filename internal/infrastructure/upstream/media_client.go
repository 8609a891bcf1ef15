package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

// MediaClient implements ports.MediaAPI against the remote media service.
type MediaClient struct {
	*Client
}

func NewMediaClient(c *Client) *MediaClient {
	return &MediaClient{Client: c}
}

// UploadAvatar sends the image bound to userID as a multipart form. Every
// failure collapses into domain.ErrUploadFailed: callers treat the upload as
// best-effort and must not branch on the cause.
func (c *MediaClient) UploadAvatar(ctx context.Context, userID string, avatar domain.Avatar) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	if err := form.WriteField("userId", userID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, avatar.Filename))
	contentType := avatar.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if _, err := part.Write(avatar.Data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/media/avatar", &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	if err := c.send("media_upload_avatar", req, nil); err != nil {
		if errors.Is(err, domain.ErrUploadFailed) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return nil
}
