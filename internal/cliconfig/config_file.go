package cliconfig

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/d12pack/pkg/render"
)

// FileConfig mirrors Config with TOML keys.
type FileConfig struct {
	OutDir   string    `toml:"out_dir"`
	ID       string    `toml:"id"`
	Name     string    `toml:"name"`
	StyleTag string    `toml:"style_tag"`
	Author   string    `toml:"author"`
	License  string    `toml:"license"`
	MaxPip   *int      `toml:"max_pip"`
	Preview  string    `toml:"preview"`
	LogLevel string    `toml:"log_level"`
	Theme    ThemeFile `toml:"theme"`
}

// ThemeFile is the [theme] table. Empty keys keep the default paint.
type ThemeFile struct {
	GradientTop    string  `toml:"gradient_top"`
	GradientBottom string  `toml:"gradient_bottom"`
	Stroke         string  `toml:"stroke"`
	ShadowColor    string  `toml:"shadow_color"`
	ShadowOpacity  float64 `toml:"shadow_opacity"`
	InnerFill      string  `toml:"inner_fill"`
	InnerStroke    string  `toml:"inner_stroke"`
	DividerFill    string  `toml:"divider_fill"`
	DividerRule    string  `toml:"divider_rule"`
	Ink            string  `toml:"ink"`
	PipOpacity     float64 `toml:"pip_opacity"`
	LabelOpacity   float64 `toml:"label_opacity"`
	FontFamily     string  `toml:"font_family"`
}

func (t ThemeFile) theme() render.Theme {
	return render.Theme{
		GradientTop:    t.GradientTop,
		GradientBottom: t.GradientBottom,
		Stroke:         t.Stroke,
		ShadowColor:    t.ShadowColor,
		ShadowOpacity:  t.ShadowOpacity,
		InnerFill:      t.InnerFill,
		InnerStroke:    t.InnerStroke,
		DividerFill:    t.DividerFill,
		DividerRule:    t.DividerRule,
		Ink:            t.Ink,
		PipOpacity:     t.PipOpacity,
		LabelOpacity:   t.LabelOpacity,
		FontFamily:     t.FontFamily,
	}
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("out-dir", fc.OutDir, &cfg.OutDir)
	s.setString("id", fc.ID, &cfg.ID)
	s.setString("name", fc.Name, &cfg.Name)
	s.setString("style", fc.StyleTag, &cfg.StyleTag)
	s.setString("author", fc.Author, &cfg.Author)
	s.setString("license", fc.License, &cfg.License)
	s.setString("preview", fc.Preview, &cfg.Preview)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("max-pip", fc.MaxPip, &cfg.MaxPip)

	cfg.Theme = cfg.Theme.Merge(fc.Theme.theme())
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
