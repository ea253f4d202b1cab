package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const ImgBBEndpoint = "https://api.imgbb.com/1/upload"

// KeySource yields the ImgBB credential. It is consulted on every upload so a
// key changed in the settings takes effect immediately.
type KeySource interface {
	ImgBBAPIKey(ctx context.Context) (string, error)
}

type ImgBB struct {
	endpoint   string
	keys       KeySource
	httpClient *http.Client
}

func NewImgBB(endpoint string, keys KeySource) *ImgBB {
	if endpoint == "" {
		endpoint = ImgBBEndpoint
	}
	return &ImgBB{
		endpoint: endpoint,
		keys:     keys,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *ImgBB) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	key, err := u.keys.ImgBBAPIKey(ctx)
	if err != nil {
		return "", fmt.Errorf("imgbb: read api key: %w", err)
	}
	if key == "" {
		return "", ErrMissingAPIKey
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("imgbb: read image: %w", err)
	}
	if len(raw) == 0 {
		return "", ErrEmptyImage
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := [][2]string{
		{"key", key},
		{"image", base64.StdEncoding.EncodeToString(raw)},
		{"name", filename},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return "", fmt.Errorf("imgbb: build form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("imgbb: build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("imgbb: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imgbb: do request: %w", err)
	}
	defer resp.Body.Close()

	var result imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("imgbb: decode response (status %d): %w", resp.StatusCode, err)
	}

	if !result.Success {
		msg := result.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("upload failed with status %d", resp.StatusCode)
		}
		return "", &ProviderError{Provider: "imgbb", Message: msg}
	}

	if result.Data.DisplayURL != "" {
		return result.Data.DisplayURL, nil
	}
	return result.Data.URL, nil
}
