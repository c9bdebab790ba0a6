package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spritebox/internal/graphics"
)

type countingUploader struct {
	next    uint32
	deleted []uint32
}

func (u *countingUploader) Upload(*graphics.PixelData) (uint32, error) { u.next++; return u.next, nil }
func (u *countingUploader) Delete(id uint32)                           { u.deleted = append(u.deleted, id) }
func (u *countingUploader) Bind(uint32)                                {}

func fakeDecode(path string) (*graphics.PixelData, error) {
	if filepath.Base(path) == "corrupt.png" {
		return nil, errors.Wrap(graphics.ErrDecode, path)
	}
	return &graphics.PixelData{Width: 2, Height: 2, Channels: 4, Pix: make([]byte, 16)}, nil
}

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(root, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
}

func newLibrary() (*Library, *graphics.TextureCache, *countingUploader) {
	up := &countingUploader{}
	cache := graphics.NewTextureCache(up)
	cache.SetDecoder(fakeDecode)
	return NewLibrary(cache), cache, up
}

func TestPreload(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "image1.png", "sub/test1.png", "corrupt.png", "notes.txt")
	lib, cache, _ := newLibrary()

	var out bytes.Buffer
	n, err := lib.Preload(root, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"image1.png", "test1.png"}, lib.Names())
	assert.Equal(t, 2, cache.Len())

	tex, err := lib.Get("test1.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sub", "test1.png"), tex.Path())

	_, err = lib.Get("notes.txt")
	assert.True(t, errors.Is(err, ErrUnknownAsset))
}

func TestPreloadMissingDir(t *testing.T) {
	lib, _, _ := newLibrary()
	n, err := lib.Preload(filepath.Join(t.TempDir(), "nope"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReloadSwapsTexture(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "image1.png")
	lib, cache, up := newLibrary()
	_, err := lib.Preload(root, &bytes.Buffer{})
	require.NoError(t, err)

	before, _ := lib.Get("image1.png")
	held, err := before.Clone()
	require.NoError(t, err)

	path := filepath.Join(root, "image1.png")
	require.True(t, lib.Tracks(path))
	require.NoError(t, lib.Reload(path))

	after, _ := lib.Get("image1.png")
	assert.NotEqual(t, held.ID(), after.ID())
	assert.Empty(t, up.deleted, "old texture is still held")

	held.Release()
	assert.Zero(t, held.ID())
	assert.Len(t, up.deleted, 1)
	assert.Equal(t, 1, cache.Len())

	assert.True(t, errors.Is(lib.Reload(filepath.Join(root, "other.png")), ErrUnknownAsset))

	lib.Release()
	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, lib.Names())
}

func TestRefreshSharesReloadedTexture(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "image1.png")
	lib, cache, up := newLibrary()
	_, err := lib.Preload(root, &bytes.Buffer{})
	require.NoError(t, err)

	// a sprite drawn from the same file holds its own reference
	path := filepath.Join(root, "image1.png")
	held, err := cache.Load(path)
	require.NoError(t, err)

	require.NoError(t, lib.Refresh(path))
	fresh, err := cache.Load(path)
	require.NoError(t, err)
	held.Release()

	libTex, _ := lib.Get("image1.png")
	assert.Equal(t, libTex.ID(), fresh.ID())
	assert.Equal(t, uint32(2), up.next, "one upload per decode")
	assert.Equal(t, []uint32{1}, up.deleted)
	assert.Equal(t, 1, cache.Len())
}

func TestRefreshForgetsUntrackedPath(t *testing.T) {
	lib, cache, up := newLibrary()
	decodes := 0
	cache.SetDecoder(func(path string) (*graphics.PixelData, error) {
		decodes++
		return fakeDecode(path)
	})

	path := filepath.Join(t.TempDir(), "loose.png")
	held, err := cache.Load(path)
	require.NoError(t, err)

	require.NoError(t, lib.Refresh(path))
	assert.Equal(t, 0, cache.Len())

	fresh, err := cache.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, decodes)
	assert.NotEqual(t, held.ID(), fresh.ID())

	oldID := held.ID()
	held.Release()
	assert.Equal(t, []uint32{oldID}, up.deleted)
	assert.Equal(t, 1, cache.Len())
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("a/b.PNG"))
	assert.True(t, IsImage("x.webp"))
	assert.False(t, IsImage("x.lua"))
}

func TestWatcherReportsWrites(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "images/image1.png")

	w, err := NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	require.NoError(t, w.AddRecursive(root))

	target := filepath.Join(root, "images", "image1.png")
	require.NoError(t, os.WriteFile(target, []byte("changed"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Poll()...)
		for _, p := range got {
			if p == target {
				return true
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Error(t, w.AddRecursive(root))
}
