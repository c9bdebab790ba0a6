package graphics

import (
	"image"

	"github.com/pkg/errors"

	"spritebox/internal/logging"
)

var ErrTextureReleased = errors.New("texture released")

// Uploader moves decoded pixels to the GPU and manages the resulting handles.
type Uploader interface {
	Upload(pd *PixelData) (uint32, error)
	Delete(id uint32)
	Bind(id uint32)
}

// DecodeFunc turns a path into pixels. DecodeFile is the default.
type DecodeFunc func(path string) (*PixelData, error)

type textureEntry struct {
	id     uint32
	width  int
	height int
	refs   int
	cached bool
}

// TextureCache shares one GPU texture per path among every live holder. The last
// Release deletes the handle and evicts the path, so a later Load decodes again.
// It is confined to the render thread.
type TextureCache struct {
	up      Uploader
	decode  DecodeFunc
	entries map[string]*textureEntry
}

func NewTextureCache(up Uploader) *TextureCache {
	return &TextureCache{
		up:      up,
		decode:  DecodeFile,
		entries: make(map[string]*textureEntry),
	}
}

// SetDecoder replaces the file decoder.
func (c *TextureCache) SetDecoder(fn DecodeFunc) {
	c.decode = fn
}

// Load returns a handle for path, decoding and uploading only when no live entry exists.
func (c *TextureCache) Load(path string) (*Texture, error) {
	if e, ok := c.entries[path]; ok {
		e.refs++
		return &Texture{cache: c, entry: e, path: path}, nil
	}
	pd, err := c.decode(path)
	if err != nil {
		return nil, err
	}
	return c.LoadPixels(path, pd)
}

// LoadPixels uploads pixels decoded elsewhere under path. A live entry wins and
// pd is dropped.
func (c *TextureCache) LoadPixels(path string, pd *PixelData) (*Texture, error) {
	if e, ok := c.entries[path]; ok {
		e.refs++
		return &Texture{cache: c, entry: e, path: path}, nil
	}
	tex, err := c.store(path, pd)
	if err != nil {
		return nil, errors.Wrapf(err, "texture %s", path)
	}
	logging.Info("loaded texture %s: %dx%d, %d bpp", path, pd.Width, pd.Height, pd.Channels*8)
	return tex, nil
}

// Decoder returns the file decoder. It holds no cache state and is safe to
// call from worker goroutines.
func (c *TextureCache) Decoder() DecodeFunc {
	return c.decode
}

// LoadImage is Load for an in-memory image registered under key.
func (c *TextureCache) LoadImage(key string, img image.Image) (*Texture, error) {
	if e, ok := c.entries[key]; ok {
		e.refs++
		return &Texture{cache: c, entry: e, path: key}, nil
	}
	return c.store(key, FromImage(img))
}

func (c *TextureCache) store(key string, pd *PixelData) (*Texture, error) {
	if _, err := PixelFormat(pd.Channels); err != nil {
		return nil, err
	}
	id, err := c.up.Upload(pd)
	if err != nil {
		return nil, err
	}
	e := &textureEntry{id: id, width: pd.Width, height: pd.Height, refs: 1, cached: true}
	c.entries[key] = e
	return &Texture{cache: c, entry: e, path: key}, nil
}

// Forget evicts path without touching its GPU handle. Existing holders keep
// their texture until they release it; the next Load decodes afresh.
func (c *TextureCache) Forget(path string) bool {
	e, ok := c.entries[path]
	if !ok {
		return false
	}
	e.cached = false
	delete(c.entries, path)
	return true
}

// Len reports the number of live cached paths.
func (c *TextureCache) Len() int {
	return len(c.entries)
}

func (c *TextureCache) release(path string, e *textureEntry) {
	e.refs--
	if e.refs > 0 {
		return
	}
	c.up.Delete(e.id)
	if e.cached && c.entries[path] == e {
		delete(c.entries, path)
	}
}

// Texture is one holder's reference to a shared GPU texture.
type Texture struct {
	cache    *TextureCache
	entry    *textureEntry
	path     string
	released bool
}

func (t *Texture) ID() uint32 {
	if t == nil || t.released {
		return 0
	}
	return t.entry.id
}

func (t *Texture) Width() int {
	if t == nil || t.released {
		return 0
	}
	return t.entry.width
}

func (t *Texture) Height() int {
	if t == nil || t.released {
		return 0
	}
	return t.entry.height
}

func (t *Texture) Path() string {
	return t.path
}

// Clone returns another reference to the same GPU texture.
func (t *Texture) Clone() (*Texture, error) {
	if t == nil || t.released {
		return nil, ErrTextureReleased
	}
	t.entry.refs++
	return &Texture{cache: t.cache, entry: t.entry, path: t.path}, nil
}

// Release drops this reference. Calling it twice is a no-op.
func (t *Texture) Release() {
	if t == nil || t.released {
		return
	}
	t.released = true
	t.cache.release(t.path, t.entry)
}

// Bind makes the texture current on unit 0.
func (t *Texture) Bind() error {
	if t == nil || t.released {
		return ErrTextureReleased
	}
	t.cache.up.Bind(t.entry.id)
	return nil
}
