// Package loop runs one interactive game session over a terminal stream:
// it reads input, advances the game at a fixed tick rate and renders each
// frame through a scaled canvas.
package loop

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/hive/internal/config"
	"github.com/tomz197/hive/internal/draw"
	"github.com/tomz197/hive/internal/game"
	"github.com/tomz197/hive/internal/input"
	"github.com/tomz197/hive/internal/object"
	"github.com/tomz197/hive/internal/physics"
)

var (
	// ErrQuit is returned by Run when the player asked to leave.
	ErrQuit = errors.New("loop: player quit")
	// ErrIdle is returned by Run when no input arrived within the idle timeout.
	ErrIdle = errors.New("loop: session idle")
)

// endScreenGraceTicks is how long the end screen ignores input, so a held
// fire key does not restart the game the moment it ends.
const endScreenGraceTicks = 20

var _ game.Surface = (*draw.Frame)(nil)
var _ game.Pointer = (*draw.Canvas)(nil)

// Options configure a Session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // draw.DefaultTermSizeFunc when nil
	Tuning       config.Tuning     // config.DefaultTuning() when zero
	Logger       *log.Logger       // Discarded when nil
	Rand         object.Rand       // Seeded from Tuning.Seed when nil
	IdleTimeout  time.Duration     // Zero disables the idle check
}

// Session plays consecutive games on one terminal until the player quits,
// the input ends or the context is cancelled.
type Session struct {
	reader       *bufio.Reader
	writer       io.Writer
	out          *draw.ChunkWriter
	canvas       *draw.Canvas
	frame        *draw.Frame
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	tuning       config.Tuning
	idleTimeout  time.Duration
	log          *log.Logger
	rng          object.Rand

	game       *game.Game
	games      int
	endTicks   int // Ticks spent on the current end screen
	lastInput  time.Time
	lastResize [2]int
}

// NewSession prepares a session reading from r and drawing to w.
// Input is read on a separate goroutine from the moment the session exists.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.DefaultTuning()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = game.NewRand(opts.Tuning.Seed)
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(opts.Tuning, termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, physics.FieldWidth, physics.FieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	out := draw.NewChunkWriter(w)

	s := &Session{
		reader:       r,
		writer:       w,
		out:          out,
		canvas:       canvas,
		frame:        draw.NewFrame(canvas, out),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		tuning:       opts.Tuning,
		idleTimeout:  opts.IdleTimeout,
		log:          logger,
		rng:          rng,
		lastInput:    time.Now(),
		lastResize:   [2]int{termWidth, termHeight},
	}
	s.newGame()
	return s
}

// Game returns the game currently being played.
func (s *Session) Game() *game.Game {
	return s.game
}

// Games returns how many games were started in this session, counting the
// current one.
func (s *Session) Games() int {
	return s.games
}

// Run plays until the player quits (ErrQuit), goes idle (ErrIdle), the
// input stream ends (nil) or ctx is done (ctx.Err()).
func (s *Session) Run(ctx context.Context) error {
	defer s.inputStream.Stop()
	draw.HideCursor(s.out)
	draw.EnableMouse(s.out)
	draw.ClearScreen(s.out)
	if err := s.out.Flush(); err != nil {
		return err
	}
	defer func() {
		draw.DisableMouse(s.writer)
		draw.ShowCursor(s.writer)
		draw.ClearScreen(s.writer)
	}()

	ticker := time.NewTicker(s.tuning.TickDelay)
	defer ticker.Stop()

	for {
		err := s.tick()
		if errors.Is(err, io.EOF) {
			s.log.Info("input closed", "games", s.games)
			return nil
		}
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// tick reads input and advances the session by one tick.
func (s *Session) tick() error {
	in := input.ReadInput(s.inputStream)
	if in.Quit {
		s.log.Info("player quit", "phase", s.game.Phase, "score", s.game.Score)
		return ErrQuit
	}
	if err := s.checkIdle(in, time.Now()); err != nil {
		return err
	}
	s.updateScreen()
	if err := s.step(in); err != nil {
		return err
	}
	if s.inputStream.Closed() {
		return io.EOF
	}
	return nil
}

// step applies one tick of input to the current phase and draws the frame.
func (s *Session) step(in input.Input) error {
	g := s.game
	switch g.Phase {
	case game.PhaseNotStarted:
		if in.Start() {
			input.ResetKeyInput(s.inputStream)
			g.Start()
		}
	case game.PhaseRunning:
		if g.Advance() {
			g.Update()
			if err := g.Draw(s.frame); err != nil {
				return err
			}
			g.HandleInput(in)
			g.CheckDeath()
			return nil
		}
	default:
		s.endTicks++
		if s.endTicks > endScreenGraceTicks && (in.Space || in.Enter) {
			input.ResetKeyInput(s.inputStream)
			s.newGame()
			s.game.Start()
		}
	}
	return s.game.Draw(s.frame)
}

// newGame replaces the current game with a fresh one on its start screen.
func (s *Session) newGame() {
	s.games++
	s.endTicks = 0
	s.game = game.New(game.Options{
		Rand:     s.rng,
		Logger:   s.log.With("game", s.games),
		WinScore: s.tuning.WinScore,
		Pointer:  s.canvas,
	})
}

// checkIdle ends the session when no bytes arrived for longer than the
// idle timeout.
func (s *Session) checkIdle(in input.Input, now time.Time) error {
	if len(in.Pressed) > 0 {
		s.lastInput = now
		return nil
	}
	if s.idleTimeout > 0 && now.Sub(s.lastInput) > s.idleTimeout {
		s.log.Info("idle timeout", "after", s.idleTimeout)
		return ErrIdle
	}
	return nil
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(s.tuning, termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.out)
		s.canvas.ForceRedraw()
	}
	if size := [2]int{termWidth, termHeight}; size != s.lastResize {
		s.log.Debug("terminal resized", "width", termWidth, "height", termHeight)
		s.lastResize = size
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(t config.Tuning, termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = max(min(termWidth, t.MaxTermWidth), 1)
	renderHeight = max(min(termHeight, t.MaxTermHeight), 1)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
