package render

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF textures
	_ "image/jpeg" // JPEG textures
	_ "image/png"  // PNG textures
	"io"
	"os"
	"sort"
	"unicode/utf8"

	_ "golang.org/x/image/bmp"  // BMP textures
	_ "golang.org/x/image/webp" // WebP textures

	"github.com/vovakirdan/quad-arcade/internal/config"
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// DefaultGlyph is drawn for textures that do not name one.
const DefaultGlyph = '█'

// Texture is what a handle stands for. Terminal canvases draw Glyph in
// Color; pixel canvases draw Image, or a Color-filled quad when it is nil.
type Texture struct {
	Name  string
	Glyph rune
	Color core.Color
	Image image.Image
}

// Atlas owns a game's textures and hands out opaque handles for them.
// Handles start at 1; sim.NoTexture is never issued.
type Atlas struct {
	textures []Texture
	byName   map[string]sim.TextureHandle
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{byName: make(map[string]sim.TextureHandle)}
}

// Define registers a glyph-only texture. Defining an existing name
// replaces it and keeps its handle.
func (a *Atlas) Define(name string, glyph rune, c core.Color) sim.TextureHandle {
	return a.put(Texture{Name: name, Glyph: glyph, Color: c})
}

// Load decodes an image file into a texture. Its average opaque color
// becomes the terminal tint.
func (a *Atlas) Load(name, path string, glyph rune) (sim.TextureHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return sim.NoTexture, fmt.Errorf("render: cannot open texture %s: %w", path, err)
	}
	defer f.Close()

	h, err := a.Decode(name, f, glyph)
	if err != nil {
		return sim.NoTexture, fmt.Errorf("render: %s: %w", path, err)
	}
	return h, nil
}

// Decode reads an image in any registered format into a texture.
func (a *Atlas) Decode(name string, r io.Reader, glyph rune) (sim.TextureHandle, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return sim.NoTexture, fmt.Errorf("cannot decode texture %q: %w", name, err)
	}
	return a.put(Texture{Name: name, Glyph: glyph, Color: averageColor(img), Image: img}), nil
}

// Add is the config-driven entry point: it loads path when set, otherwise
// defines a glyph texture. glyph and color use their config spellings; a
// color given with an image overrides the sampled tint.
func (a *Atlas) Add(name, path, glyph, color string) (sim.TextureHandle, error) {
	g := DefaultGlyph
	if glyph != "" {
		g, _ = utf8.DecodeRuneInString(glyph)
	}
	c, err := core.ParseColor(color)
	if err != nil {
		return sim.NoTexture, fmt.Errorf("render: texture %q: %w", name, err)
	}
	if path == "" {
		return a.Define(name, g, c), nil
	}

	h, err := a.Load(name, path, g)
	if err != nil {
		return sim.NoTexture, err
	}
	if color != "" {
		a.textures[h-1].Color = c
	}
	return h, nil
}

// AddAll adds every texture of a config section, in name order so the
// handles do not depend on map iteration.
func (a *Atlas) AddAll(specs map[string]config.TextureSpec) error {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := specs[name]
		if _, err := a.Add(name, spec.Path, spec.Glyph, spec.Color); err != nil {
			return err
		}
	}
	return nil
}

// GlyphAtlas builds an atlas that never touches the filesystem: every
// texture of specs becomes its glyph, and an unknown color falls back to
// the default. Games reset without Load draw with it.
func GlyphAtlas(specs map[string]config.TextureSpec) *Atlas {
	a := NewAtlas()
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := specs[name]
		g := DefaultGlyph
		if spec.Glyph != "" {
			g, _ = utf8.DecodeRuneInString(spec.Glyph)
		}
		c, err := core.ParseColor(spec.Color)
		if err != nil {
			c = core.ColorDefault
		}
		a.Define(name, g, c)
	}
	return a
}

// Handle returns the handle registered for name, or sim.NoTexture.
func (a *Atlas) Handle(name string) sim.TextureHandle {
	if a == nil {
		return sim.NoTexture
	}
	return a.byName[name]
}

// Get returns the texture behind a handle.
func (a *Atlas) Get(h sim.TextureHandle) (Texture, bool) {
	if a == nil || h == sim.NoTexture || int(h) > len(a.textures) {
		return Texture{}, false
	}
	return a.textures[h-1], true
}

// Len returns the number of textures.
func (a *Atlas) Len() int {
	return len(a.textures)
}

func (a *Atlas) put(t Texture) sim.TextureHandle {
	if t.Glyph == 0 {
		t.Glyph = DefaultGlyph
	}
	if h, ok := a.byName[t.Name]; ok {
		a.textures[h-1] = t
		return h
	}
	a.textures = append(a.textures, t)
	h := sim.TextureHandle(len(a.textures))
	a.byName[t.Name] = h
	return h
}

// averageColor samples up to 64x64 pixels and maps their mean opaque color
// onto the terminal palette.
func averageColor(img image.Image) core.Color {
	b := img.Bounds()
	stepX := max(1, b.Dx()/64)
	stepY := max(1, b.Dy()/64)

	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa < 0x8000 {
				continue
			}
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			bl += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return core.ColorGray
	}
	return core.NearestColor(uint8(r/n), uint8(g/n), uint8(bl/n))
}
