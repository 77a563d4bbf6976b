package ui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"hybridchess/config"
)

func TestColorConfigApply(t *testing.T) {
	cfg := config.DefaultConfig
	saves, done := 0, 0
	cc := NewColorConfig(&cfg, func() error { saves++; return nil }, func() { done++ })

	cc.ToggleMode()
	cc.Apply(0)
	if cfg.Theme.Colors.Dark != darkColors[0].code {
		t.Errorf("Dark = %d, want %d", cfg.Theme.Colors.Dark, darkColors[0].code)
	}
	if cc.editingDark {
		t.Error("confirming a dark colour should switch back to light squares")
	}
	if saves != 1 || done != 0 {
		t.Errorf("saves = %d done = %d, want 1 0", saves, done)
	}

	cc.Apply(1)
	if cfg.Theme.Colors.Light != lightColors[1].code {
		t.Errorf("Light = %d, want %d", cfg.Theme.Colors.Light, lightColors[1].code)
	}
	if saves != 2 || done != 1 {
		t.Errorf("saves = %d done = %d, want 2 1", saves, done)
	}

	cc.Apply(99)
	if saves != 2 {
		t.Error("out of range index should not save")
	}
}

func TestColorConfigSaveError(t *testing.T) {
	cfg := config.DefaultConfig
	cc := NewColorConfig(&cfg, func() error { return errors.New("read-only") }, nil)
	cc.Apply(0)
	if cfg.Theme.Colors.Light != lightColors[0].code {
		t.Error("colour should still apply when saving fails")
	}
}

func TestColorConfigPreview(t *testing.T) {
	cfg := config.DefaultConfig
	cc := NewColorConfig(&cfg, nil, nil)
	screen := newScreen(t)
	cc.preview.SetRect(0, 0, 40, 12)
	cc.preview.Draw(screen)

	if r, bg := cellAt(screen, 3, 1); r != cfg.Theme.Symbols.Rook || bg != tcell.PaletteColor(cfg.Theme.Colors.Light) {
		t.Errorf("preview a-cell = %q on %v", r, bg)
	}
	if _, bg := cellAt(screen, 2+cfg.Theme.CellWidth, 1); bg != tcell.PaletteColor(cfg.Theme.Colors.Dark) {
		t.Errorf("neighbouring preview cell bg = %v, want dark", bg)
	}
}

func TestColorConfigPreviewUsesThemeSymbols(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.Theme.Symbols.Rook = 'R'
	cfg.Theme.Symbols.Knight = 'N'
	cfg.Theme.Symbols.Bishop = 'B'
	cc := NewColorConfig(&cfg, nil, nil)
	screen := newScreen(t)
	cc.preview.SetRect(0, 0, 40, 12)
	cc.preview.Draw(screen)

	if r, _ := cellAt(screen, 3, 1); r != 'R' {
		t.Errorf("rook glyph = %q, want R", r)
	}
	// the knight-bishop hybrid is the next cell along, centred in its 4 columns
	if r, _ := cellAt(screen, 7, 1); r != 'N' {
		t.Errorf("hybrid first glyph = %q, want N", r)
	}
	if r, _ := cellAt(screen, 8, 1); r != 'B' {
		t.Errorf("hybrid second glyph = %q, want B", r)
	}
}
