// hybridchess is a board for chess variants whose squares can hold several
// stacked pieces at once, playable in the terminal or a desktop window.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"hybridchess/assets"
	"hybridchess/config"
	"hybridchess/engine"
	"hybridchess/engine/classic"
	"hybridchess/interact"
	"hybridchess/logx"
	"hybridchess/snapshot"
	"hybridchess/types"
	"hybridchess/ui"
	"hybridchess/view"
	"hybridchess/window"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "hybridchess",
		Usage:   "hybrid chess board",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "fen",
				Usage: "start position in FEN format",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "development logging at debug level",
			},
			&cli.BoolFlag{
				Name:  "console",
				Usage: "log to stdout instead of the log file",
			},
		},
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play in the terminal",
				Action: playAction,
			},
			{
				Name:  "window",
				Usage: "play in a desktop window",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "assets",
						Usage: "directory with {color}_{piece}.png images",
					},
				},
				Action: windowAction,
			},
			{
				Name:  "snapshot",
				Usage: "render the position to a PNG file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "output file",
						Value: "board.png",
					},
					&cli.StringFlag{
						Name:  "assets",
						Usage: "directory with {color}_{piece}.png images",
					},
					&cli.StringFlag{
						Name:  "select",
						Usage: "square to show selected, e.g. e2",
					},
				},
				Action: snapshotAction,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is the configuration, logger and board factory shared by every
// command.
type session struct {
	cfg    *config.Config
	log    *logx.Logx
	closer io.Closer
	fen    string
}

func newSession(c *cli.Command) (*session, error) {
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, err
	}
	if lvl := c.String("level"); lvl != "" {
		if !logx.ValidLevel(lvl) {
			return nil, fmt.Errorf("unknown log level %q", lvl)
		}
		cfg.Log.Level = lvl
	}
	debug := c.Bool("debug")
	if debug {
		cfg.Log.Level = "debug"
	}

	s := &session{cfg: cfg, fen: c.String("fen")}
	if s.fen == "" {
		s.fen = cfg.Engine.StartFEN
	}

	var w io.Writer = io.Discard
	console := c.Bool("console")
	if !console {
		path, err := config.LogPath()
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w, s.closer = f, f
	}
	s.log = logx.New(w, logx.Options{Level: cfg.Log.Level, Dev: debug, Console: console})
	return s, nil
}

func (s *session) Close() {
	_ = s.log.Sync()
	if s.closer != nil {
		s.closer.Close()
	}
}

func (s *session) newBoard() (engine.Gateway, error) {
	b, err := classic.NewFromConfig(engine.Config{StartFEN: s.fen})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *session) imageOptions(assetsDir string) (assets.Palette, *assets.Set, error) {
	palette, err := assets.PaletteFrom(s.cfg.Theme.Image)
	if err != nil {
		return assets.Palette{}, nil, err
	}
	if assetsDir == "" {
		assetsDir = s.cfg.AssetsDir
	}
	set, err := assets.Load(assetsDir, s.log)
	if err != nil {
		return assets.Palette{}, nil, err
	}
	return palette, set, nil
}

func playAction(ctx context.Context, c *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs a terminal; use the snapshot command for files")
	}
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := s.newBoard()
	if err != nil {
		return err
	}

	app := tview.NewApplication()
	board := ui.NewChessBoard(app, s.cfg, s.log)
	hint := ui.NewHint()
	gameFrame := ui.CreateGameLayout(board, hint)
	gameFrame.SetBorder(true).SetTitle(" ♛ hybridchess ")

	m := interact.New(g, board, s.log)
	board.Attach(m)

	rootPage := tview.NewPages()
	colorConfig := ui.NewColorConfig(s.cfg, s.cfg.Save, func() {
		board.SetConfig(s.cfg)
		rootPage.SwitchToPage("gameview")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			board.SetConfig(s.cfg)
			rootPage.SwitchToPage("gameview")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	board.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc:
			board.Deselect()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				app.Stop()
				return nil
			case 'n':
				next, err := s.newBoard()
				if err != nil {
					s.log.Errorf("new game: %v", err)
					return nil
				}
				s.log.Infof("new game")
				m.Reset(next)
				return nil
			case 'c':
				rootPage.SwitchToPage("colors")
				return nil
			}
		}
		return event
	})

	app.EnableMouse(true)
	app.SetMouseCapture(board.MouseCapture())
	s.log.Infof("starting terminal game")
	rootPage.AddPage("gameview", gameFrame, true, true)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)
	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		return err
	}
	return board.Err()
}

func windowAction(ctx context.Context, c *cli.Command) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := s.newBoard()
	if err != nil {
		return err
	}
	palette, set, err := s.imageOptions(c.String("assets"))
	if err != nil {
		return err
	}
	game := window.New(g, window.Options{
		SquareSize: s.cfg.Window.SquareSize,
		Margin:     s.cfg.Window.Margin,
		Palette:    palette,
		Images:     set,
		NewBoard:   s.newBoard,
	}, s.log)
	s.log.Infof("starting window game")
	return game.Run()
}

func snapshotAction(ctx context.Context, c *cli.Command) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := s.newBoard()
	if err != nil {
		return err
	}
	palette, set, err := s.imageOptions(c.String("assets"))
	if err != nil {
		return err
	}

	m := interact.New(g, nil, s.log)
	if name := c.String("select"); name != "" {
		sq, err := types.ParseSquare(name)
		if err != nil {
			return err
		}
		if err := m.SquareClicked(sq); err != nil {
			return err
		}
	}

	frame := view.New(s.log).Render(m.Snapshot())
	out := c.String("out")
	if err := snapshot.Write(out, frame, snapshot.Options{
		SquareSize: s.cfg.Window.SquareSize,
		Margin:     s.cfg.Window.Margin,
		Palette:    palette,
		Images:     set,
	}); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
