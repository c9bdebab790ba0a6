// Package assets preloads sprite images into the texture cache and keeps them
// fresh when files change on disk.
package assets

import (
	"io"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"spritebox/internal/graphics"
	"spritebox/internal/logging"
	"spritebox/internal/sys"
)

var ErrUnknownAsset = errors.New("unknown asset")

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// IsImage reports whether path has a decodable image extension.
func IsImage(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// Library holds one texture reference per image, addressed by base name.
type Library struct {
	cache    *graphics.TextureCache
	textures map[string]*graphics.Texture
	paths    map[string]string
}

func NewLibrary(cache *graphics.TextureCache) *Library {
	return &Library{
		cache:    cache,
		textures: make(map[string]*graphics.Texture),
		paths:    make(map[string]string),
	}
}

// Preload loads every image under dir, reporting progress to out. Decoding runs
// in parallel; uploads happen on the calling thread. Files that fail to decode
// are logged and skipped.
func (l *Library) Preload(dir string, out io.Writer) (int, error) {
	files, err := sys.UniqueFiles(dir)
	if err != nil {
		return 0, err
	}
	names := make([]string, 0, len(files))
	for name, path := range files {
		if IsImage(path) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return 0, nil
	}
	sort.Strings(names)

	bar := progressbar.NewOptions(len(names),
		progressbar.OptionSetDescription("loading textures"),
		progressbar.OptionSetWriter(out),
		progressbar.OptionClearOnFinish(),
	)
	pool := NewDecodePool(runtime.NumCPU(), len(names), l.cache.Decoder())
	defer pool.Shutdown()
	results := make(chan DecodeResult, len(names))
	for _, name := range names {
		pool.SubmitJobBlocking(DecodeJob{Name: name, Path: files[name], Result: results})
	}

	loaded := 0
	for range names {
		res := <-results
		if err := l.store(res); err != nil {
			logging.Warn("skipping %s: %v", res.Path, err)
		} else {
			loaded++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return loaded, nil
}

// store uploads a decoded image on the calling thread.
func (l *Library) store(res DecodeResult) error {
	if res.Err != nil {
		return res.Err
	}
	tex, err := l.cache.LoadPixels(res.Path, res.Pixels)
	if err != nil {
		return err
	}
	l.set(res.Name, res.Path, tex)
	return nil
}

func (l *Library) load(name, path string) error {
	tex, err := l.cache.Load(path)
	if err != nil {
		return err
	}
	l.set(name, path, tex)
	return nil
}

func (l *Library) set(name, path string, tex *graphics.Texture) {
	if old, ok := l.textures[name]; ok {
		old.Release()
	}
	l.textures[name] = tex
	l.paths[name] = path
}

// Get returns the texture registered under a base name. The library keeps
// ownership; callers that hold on to it should Clone.
func (l *Library) Get(name string) (*graphics.Texture, error) {
	tex, ok := l.textures[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownAsset, name)
	}
	return tex, nil
}

// Names lists the registered base names, sorted.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.textures))
	for name := range l.textures {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Tracks reports whether path is one of the library's files.
func (l *Library) Tracks(path string) bool {
	p, ok := l.paths[filepath.Base(path)]
	return ok && filepath.Clean(p) == filepath.Clean(path)
}

// Reload decodes path again and swaps the library's reference to the new texture.
// Holders of the old texture keep it until they release it.
func (l *Library) Reload(path string) error {
	name := filepath.Base(path)
	if !l.Tracks(path) {
		return errors.Wrap(ErrUnknownAsset, path)
	}
	l.cache.Forget(l.paths[name])
	if err := l.load(name, l.paths[name]); err != nil {
		return errors.Wrapf(err, "reload %s", path)
	}
	logging.Info("reloaded %s", path)
	return nil
}

// Refresh drops the stale copy of a changed file. A tracked file is reloaded in
// place, so a later Load of the same path shares the library's texture. Any
// other path is only evicted and decodes again on its next Load.
func (l *Library) Refresh(path string) error {
	if l.Tracks(path) {
		return l.Reload(path)
	}
	l.cache.Forget(path)
	return nil
}

// Release drops every reference the library holds.
func (l *Library) Release() {
	for name, tex := range l.textures {
		tex.Release()
		delete(l.textures, name)
		delete(l.paths, name)
	}
}
