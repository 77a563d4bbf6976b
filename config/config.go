package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/lucasb-eyer/go-colorful"

	"hybridchess/logx"
)

var (
	cfgFile = "hybridchess/config.json"
	logFile = "hybridchess/hybridchess.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are 256-colour palette indices for the terminal board.
type ConfigColors struct {
	Light      int `json:"light"`
	Dark       int `json:"dark"`
	Selected   int `json:"selected"`
	Available  int `json:"available"`
	PrevMove   int `json:"prev_move"`
	Check      int `json:"check"`
	CheckMove  int `json:"check_move"`
	WhitePiece int `json:"white_piece"`
	BlackPiece int `json:"black_piece"`
	Label      int `json:"label"`
}

// ConfigSymbols are the glyphs drawn for each piece layer.
type ConfigSymbols struct {
	King     rune `json:"king"`
	Queen    rune `json:"queen"`
	Rook     rune `json:"rook"`
	Bishop   rune `json:"bishop"`
	Knight   rune `json:"knight"`
	Pawn     rune `json:"pawn"`
	Overflow rune `json:"overflow"`
}

// ImageColors are hex colours for the window and PNG front ends.
type ImageColors struct {
	Light      string `json:"light"`
	Dark       string `json:"dark"`
	Selected   string `json:"selected"`
	Available  string `json:"available"`
	PrevMove   string `json:"prev_move"`
	Check      string `json:"check"`
	CheckMove  string `json:"check_move"`
	WhitePiece string `json:"white_piece"`
	BlackPiece string `json:"black_piece"`
}

type Theme struct {
	CellWidth  int           `json:"cell_width"`
	ShowLabels bool          `json:"show_labels"`
	Colors     ConfigColors  `json:"colors"`
	Symbols    ConfigSymbols `json:"symbols"`
	Image      ImageColors   `json:"image"`
}

// EngineConfig holds settings for the bundled reference engine.
type EngineConfig struct {
	StartFEN string `json:"start_fen"`
}

// WindowConfig sizes the windowed front end.
type WindowConfig struct {
	SquareSize int `json:"square_size"`
	Margin     int `json:"margin"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type Config struct {
	Theme     Theme        `json:"theme"`
	Engine    EngineConfig `json:"engine"`
	Window    WindowConfig `json:"window"`
	AssetsDir string       `json:"assets_dir"`
	Log       LogConfig    `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile reads a config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.King, s.Queen, s.Rook, s.Bishop, s.Knight, s.Pawn, s.Overflow} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Theme.CellWidth < 1 || c.Theme.CellWidth > 12 {
		return &InvalidConfig{fmt.Sprintf("cell_width must be between 1 and 12, got %d", c.Theme.CellWidth)}
	}
	col := c.Theme.Colors
	for _, p := range []int{col.Light, col.Dark, col.Selected, col.Available, col.PrevMove, col.Check, col.CheckMove, col.WhitePiece, col.BlackPiece, col.Label} {
		if p < 0 || p > 255 {
			return &InvalidConfig{fmt.Sprintf("palette colour %d out of range 0-255", p)}
		}
	}
	img := c.Theme.Image
	for _, h := range []string{img.Light, img.Dark, img.Selected, img.Available, img.PrevMove, img.Check, img.CheckMove, img.WhitePiece, img.BlackPiece} {
		if _, err := colorful.Hex(h); err != nil {
			return &InvalidConfig{fmt.Sprintf("invalid hex colour %q", h)}
		}
	}
	if c.Window.SquareSize < 16 {
		return &InvalidConfig{fmt.Sprintf("square_size must be at least 16, got %d", c.Window.SquareSize)}
	}
	if c.Window.Margin < 0 {
		return &InvalidConfig{"margin must not be negative"}
	}
	if !logx.ValidLevel(c.Log.Level) {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// SaveFile writes the config to path.
func (c *Config) SaveFile(path string) error {
	return saveCfgFile(path, c, 0664)
}

// LogPath returns the log file location under the XDG cache directory,
// creating parent directories as needed.
func LogPath() (string, error) {
	return xdg.CacheFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("parse %s: %w", filePath, err)
	}
	return nil
}
