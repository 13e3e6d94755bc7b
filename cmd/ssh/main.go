package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/hive/internal/config"
	"github.com/tomz197/hive/internal/draw"
	"github.com/tomz197/hive/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownTimeout    = 5 * time.Second
)

func main() {
	logger := config.NewLogger(os.Stderr, "hive-ssh")
	if err := run(logger); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func run(logger *log.Logger) error {
	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	tuning, err := config.LoadTuning(config.GetEnv("HIVE_CONFIG", ""))
	if err != nil {
		return err
	}
	logger.Info("ssh config", "host", host, "port", port, "host_key", hostKeyPath,
		"tick", tuning.TickDelay, "idle_timeout", tuning.IdleTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(ctx, logger, tuning),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting ssh server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// gameMiddleware runs an independent game for each SSH session. Sessions
// end when the player leaves or the server shuts down.
func gameMiddleware(serverCtx context.Context, logger *log.Logger, tuning config.Tuning) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLog := logger.With("session", uuid.NewString(), "user", sess.User())
			sessLog.Info("session started", "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			// Track terminal size from window change events
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			ctx, cancel := context.WithCancel(sess.Context())
			defer cancel()
			stopOnShutdown := context.AfterFunc(serverCtx, cancel)
			defer stopOnShutdown()

			session := loop.NewSession(bufio.NewReader(sess), sess, loop.Options{
				TermSizeFunc: sizeTracker.getSize,
				Tuning:       tuning,
				Logger:       sessLog,
				IdleTimeout:  tuning.IdleTimeout,
			})
			err := session.Run(ctx)
			switch {
			case err == nil, errors.Is(err, loop.ErrQuit), errors.Is(err, context.Canceled):
			case errors.Is(err, loop.ErrIdle):
				fmt.Fprintln(sess, "Disconnected after being idle.")
			default:
				sessLog.Error("session failed", "err", err)
			}

			sessLog.Info("session ended", "games", session.Games(), "score", session.Game().Score)
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
