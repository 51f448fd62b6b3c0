package ebitenui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/twig"
)

// RunConfig describes the window opened by Run and the assets bound to the
// renderer before the first frame.
type RunConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// ClearColor fills the window before shapes are drawn, as RGB in 0..1.
	ClearColor [3]float64 `toml:"clear_color"`

	// Fonts maps font names to TTF/OTF files. "default" and "button" replace
	// the stock faces; any other name registers a custom font.
	Fonts map[string]string `toml:"fonts"`
	// Images maps image names to image files. "button" and "button-hovered"
	// are the stock button images; any other name registers a custom image.
	Images map[string]string `toml:"images"`

	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool `toml:"show_fps"`
	// Debug turns on the Ui's debug mode.
	Debug bool `toml:"debug"`
}

// DefaultRunConfig returns an 800x600 window with a black background and no
// extra assets.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "twig",
		Width:  800,
		Height: 600,
	}
}

// LoadRunConfig reads a TOML run configuration. Relative asset paths are
// resolved against the directory holding the file.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRunConfig(), fmt.Errorf("read run config: %w", err)
	}
	cfg, err := ParseRunConfig(data)
	if err != nil {
		return DefaultRunConfig(), err
	}
	dir := filepath.Dir(path)
	for name, p := range cfg.Fonts {
		cfg.Fonts[name] = resolvePath(dir, p)
	}
	for name, p := range cfg.Images {
		cfg.Images[name] = resolvePath(dir, p)
	}
	return cfg, nil
}

// ParseRunConfig parses TOML bytes. Missing fields keep their defaults.
func ParseRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		return DefaultRunConfig(), fmt.Errorf("parse run config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return DefaultRunConfig(), fmt.Errorf("window size %dx%d is empty", cfg.Width, cfg.Height)
	}
	for i, v := range cfg.ClearColor {
		if v < 0 || v > 1 {
			return DefaultRunConfig(), fmt.Errorf("clear_color[%d]: %v is outside 0..1", i, v)
		}
	}
	for name, p := range cfg.Fonts {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(p) == "" {
			return DefaultRunConfig(), fmt.Errorf("fonts: empty name or path")
		}
	}
	for name, p := range cfg.Images {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(p) == "" {
			return DefaultRunConfig(), fmt.Errorf("images: empty name or path")
		}
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (cfg RunConfig) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode run config: %w", err)
	}
	return buf.Bytes(), nil
}

// Apply loads every font and image of cfg into r, in name order.
func (cfg RunConfig) Apply(r *Renderer) error {
	for _, name := range sortedKeys(cfg.Fonts) {
		data, err := os.ReadFile(cfg.Fonts[name])
		if err != nil {
			return fmt.Errorf("ebitenui: read font %q: %w", name, err)
		}
		if err := r.RegisterFont(FontNamed(name), data); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(cfg.Images) {
		if err := r.LoadImage(ImageNamed(name), cfg.Images[name]); err != nil {
			return err
		}
	}
	return nil
}

// FontNamed maps a configuration name to a font identifier.
func FontNamed(name string) twig.Font {
	switch name {
	case "default":
		return twig.Font{Kind: twig.FontDefault}
	case "button":
		return twig.Font{Kind: twig.FontButton}
	default:
		return twig.CustomFont(name)
	}
}

// ImageNamed maps a configuration name to an image identifier.
func ImageNamed(name string) twig.Image {
	switch name {
	case "button":
		return twig.Image{Kind: twig.ImageUnhoveredButton}
	case "button-hovered":
		return twig.Image{Kind: twig.ImageHoveredButton}
	default:
		return twig.CustomImage(name)
	}
}

func (cfg RunConfig) clearColor() twig.Color {
	return twig.Color{R: cfg.ClearColor[0], G: cfg.ClearColor[1], B: cfg.ClearColor[2]}
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
