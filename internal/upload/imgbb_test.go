package upload

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticKey struct {
	key string
	err error
}

func (s staticKey) ImgBBAPIKey(context.Context) (string, error) { return s.key, s.err }

func TestImgBB_UploadSendsKeyAndBase64Image(t *testing.T) {
	var gotKey, gotImage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotKey = r.FormValue("key")
		gotImage = r.FormValue("image")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"status":200,"data":{"url":"https://i.ibb.co/raw.png","display_url":"https://i.ibb.co/display.png"}}`)
	}))
	defer srv.Close()

	u := NewImgBB(srv.URL, staticKey{key: "secret-key"})
	url, err := u.Upload(context.Background(), "scarf.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)

	assert.Equal(t, "https://i.ibb.co/display.png", url)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("PNGDATA")), gotImage)
}

func TestImgBB_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"success":false,"status":400,"error":{"message":"Invalid API v1 key."}}`)
	}))
	defer srv.Close()

	u := NewImgBB(srv.URL, staticKey{key: "bad"})
	_, err := u.Upload(context.Background(), "a.png", strings.NewReader("x"))
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "imgbb", perr.Provider)
	assert.Equal(t, "Invalid API v1 key.", perr.Message)
}

func TestImgBB_Preconditions(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewImgBB(srv.URL, staticKey{}).Upload(context.Background(), "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewImgBB(srv.URL, staticKey{key: "k"}).Upload(context.Background(), "a.png", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyImage)

	boom := errors.New("db down")
	_, err = NewImgBB(srv.URL, staticKey{err: boom}).Upload(context.Background(), "a.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, boom)

	assert.False(t, called)
}

func TestImgBB_DefaultEndpoint(t *testing.T) {
	u := NewImgBB("", staticKey{})
	assert.Equal(t, ImgBBEndpoint, u.endpoint)
}
