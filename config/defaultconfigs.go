package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		CellWidth:  4,
		ShowLabels: true,
		Colors: ConfigColors{
			Light:      180,
			Dark:       137,
			Selected:   71,
			Available:  108,
			PrevMove:   186,
			Check:      167,
			CheckMove:  174,
			WhitePiece: 255,
			BlackPiece: 232,
			Label:      245,
		},
		Symbols: ConfigSymbols{
			King:     '♚',
			Queen:    '♛',
			Rook:     '♜',
			Bishop:   '♝',
			Knight:   '♞',
			Pawn:     '♟',
			Overflow: '+',
		},
		Image: ImageColors{
			Light:      "#f0d9b5",
			Dark:       "#b58863",
			Selected:   "#7fa650",
			Available:  "#a9c47f",
			PrevMove:   "#cdd26a",
			Check:      "#e06c5c",
			CheckMove:  "#d9a0a0",
			WhitePiece: "#ffffff",
			BlackPiece: "#1a1a1a",
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Engine: EngineConfig{
			StartFEN: "",
		},
		Window: WindowConfig{
			SquareSize: 72,
			Margin:     24,
		},
		AssetsDir: "assets",
		Log: LogConfig{
			Level: "info",
		},
	}
}
