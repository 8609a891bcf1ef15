package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/buy01/storefront-gateway/internal/core/domain"
)

func TestMediaClient_UploadAvatar_SendsMultipart(t *testing.T) {
	var userID, filename string
	var data []byte
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/media/avatar" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		userID = r.FormValue("userId")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer func() { _ = file.Close() }()
		filename = header.Filename
		data, _ = io.ReadAll(file)
		w.WriteHeader(http.StatusOK)
	}))

	avatar := domain.Avatar{Filename: "me.png", ContentType: "image/png", Data: []byte{0x89, 0x50}}
	if err := NewMediaClient(client).UploadAvatar(context.Background(), "u1", avatar); err != nil {
		t.Fatalf("UploadAvatar returned error: %v", err)
	}
	if userID != "u1" || filename != "me.png" || len(data) != 2 {
		t.Fatalf("unexpected upload: user=%s file=%s bytes=%d", userID, filename, len(data))
	}
}

func TestMediaClient_UploadAvatar_FailureIsUploadFailed(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := NewMediaClient(client).UploadAvatar(context.Background(), "u1", domain.Avatar{Filename: "a.png"})
	if !errors.Is(err, domain.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}
