package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"binviz/internal/decode"
)

type Theme struct {
	HighlightBackground string `toml:"highlight_background"`
	HighlightForeground string `toml:"highlight_foreground"`
	SelectionBackground string `toml:"selection_background"`
	SelectionForeground string `toml:"selection_foreground"`
	BorderColor         string `toml:"border_color"`
	ActiveBorderColor   string `toml:"active_border_color"`
	HeaderColor         string `toml:"header_color"`
	LabelColor          string `toml:"label_color"`
	ValueColor          string `toml:"value_color"`
	StatusColor         string `toml:"status_color"`
}

// View holds the initial state of the value pane.
type View struct {
	Mode       string `toml:"mode"`
	Endianness string `toml:"endianness"`
}

type Config struct {
	View  View  `toml:"view"`
	Theme Theme `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		View: View{
			Mode:       decode.ModeASCII.Key(),
			Endianness: "little",
		},
		Theme: Theme{
			HighlightBackground: "#FFFF00",
			HighlightForeground: "#000000",
			SelectionBackground: "#FFAA00",
			SelectionForeground: "#000000",
			BorderColor:         "#0000FF",
			ActiveBorderColor:   "#FF00FF",
			HeaderColor:         "#666666",
			LabelColor:          "#888888",
			ValueColor:          "#FFFFFF",
			StatusColor:         "#AAAAAA",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "binviz.toml"
	}
	return filepath.Join(home, ".config", "binviz", "binviz.toml")
}

// Load reads path, or ConfigPath when path is empty, over the defaults. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}

	if _, _, err := cfg.Initial(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Initial parses the configured starting mode and endianness.
func (c *Config) Initial() (decode.Mode, decode.Endianness, error) {
	mode, err := decode.ParseMode(c.View.Mode)
	if err != nil {
		return decode.ModeASCII, decode.LittleEndian, err
	}
	endian, err := decode.ParseEndianness(c.View.Endianness)
	if err != nil {
		return mode, decode.LittleEndian, err
	}
	return mode, endian, nil
}

type Styles struct {
	Highlight    lipgloss.Style
	Selection    lipgloss.Style
	Pane         lipgloss.Style
	ActivePane   lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	DecoderLabel lipgloss.Style
	DecoderValue lipgloss.Style
	Status       lipgloss.Style
	Inspector    lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Highlight: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.HighlightBackground)).
			Foreground(lipgloss.Color(theme.HighlightForeground)),
		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.SelectionBackground)).
			Foreground(lipgloss.Color(theme.SelectionForeground)),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.BorderColor)),
		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.ActiveBorderColor)),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.HeaderColor)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.ValueColor)),
		DecoderLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.LabelColor)),
		DecoderValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ValueColor)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusColor)),
		Inspector: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.BorderColor)).
			Padding(0, 1),
	}
}
