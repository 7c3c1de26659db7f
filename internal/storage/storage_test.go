package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	asset      *Asset
	uploadErr  error
	destroyOK  bool
	destroyErr error
	lastUpload UploadRequest
	lastID     string
	uploads    int
}

func (f *fakeHost) Upload(ctx context.Context, req UploadRequest) (*Asset, error) {
	f.uploads++
	f.lastUpload = req
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	copied := *f.asset
	return &copied, nil
}

func (f *fakeHost) Destroy(ctx context.Context, publicID string) (bool, error) {
	f.lastID = publicID
	return f.destroyOK, f.destroyErr
}

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestUploadPassesHostResultThrough(t *testing.T) {
	host := &fakeHost{asset: &Asset{
		URL:       "http://res.example/img.jpg",
		SecureURL: "https://res.example/img.jpg",
		PublicID:  "portfolio/abc123",
		Width:     1600,
		Height:    1067,
	}}
	adapter := NewAdapter(host, "")

	asset, err := adapter.Upload(context.Background(), pngDataURI(t, 4, 3), "")
	require.NoError(t, err)
	assert.Equal(t, "https://res.example/img.jpg", asset.SecureURL)
	assert.Equal(t, "portfolio/abc123", asset.PublicID)
	assert.Equal(t, 1600, asset.Width)
	assert.Equal(t, DefaultFolder, host.lastUpload.Folder)
}

func TestUploadFallsBackToProbedDimensions(t *testing.T) {
	host := &fakeHost{asset: &Asset{SecureURL: "https://res.example/x.png", PublicID: "blog/x"}}
	adapter := NewAdapter(host, "studio")

	asset, err := adapter.Upload(context.Background(), pngDataURI(t, 8, 5), "blog")
	require.NoError(t, err)
	assert.Equal(t, 8, asset.Width)
	assert.Equal(t, 5, asset.Height)
	assert.Equal(t, "blog", host.lastUpload.Folder)
}

func TestUploadRejectsNonImagePayloads(t *testing.T) {
	host := &fakeHost{asset: &Asset{}}
	adapter := NewAdapter(host, "")

	inputs := []string{
		"",
		"not a data uri",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,!!!",
		"data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("hello")),
	}
	for _, input := range inputs {
		_, err := adapter.Upload(context.Background(), input, "")
		assert.ErrorIs(t, err, ErrInvalidImage, "input %q", input)
	}
	assert.Zero(t, host.uploads)
}

func TestUploadAcceptsRemoteURL(t *testing.T) {
	host := &fakeHost{asset: &Asset{PublicID: "portfolio/remote"}}
	adapter := NewAdapter(host, "")

	asset, err := adapter.Upload(context.Background(), "https://images.example/photo.jpg", "")
	require.NoError(t, err)
	assert.Equal(t, "portfolio/remote", asset.PublicID)
}

func TestUploadHostFailureIsGeneric(t *testing.T) {
	host := &fakeHost{uploadErr: errors.New("401 invalid api key")}
	adapter := NewAdapter(host, "")

	_, err := adapter.Upload(context.Background(), pngDataURI(t, 2, 2), "")
	require.ErrorIs(t, err, ErrUploadFailed)
}

func TestDelete(t *testing.T) {
	host := &fakeHost{destroyOK: true}
	adapter := NewAdapter(host, "")

	ok, err := adapter.Delete(context.Background(), " portfolio/abc ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "portfolio/abc", host.lastID)

	host.destroyOK = false
	ok, err = adapter.Delete(context.Background(), "portfolio/missing")
	require.NoError(t, err)
	assert.False(t, ok)

	host.destroyErr = errors.New("timeout")
	_, err = adapter.Delete(context.Background(), "portfolio/abc")
	require.ErrorIs(t, err, ErrDeleteFailed)
}

func TestDisabledAdapter(t *testing.T) {
	adapter := NewAdapter(nil, "")
	assert.False(t, adapter.Enabled())

	_, err := adapter.Upload(context.Background(), "https://images.example/a.jpg", "")
	require.ErrorIs(t, err, ErrStorageDisabled)
	_, err = adapter.Delete(context.Background(), "a")
	require.ErrorIs(t, err, ErrStorageDisabled)
}
