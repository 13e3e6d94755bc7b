package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/hive/internal/config"
	"github.com/tomz197/hive/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hive: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// stdout is the game screen, so logs only go to a file when asked for.
	logOut := io.Discard
	if path := config.GetEnv("HIVE_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "hive")

	tuning, err := config.LoadTuning(config.GetEnv("HIVE_CONFIG", ""))
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting local game", "tick", tuning.TickDelay, "win_score", tuning.WinScore, "seed", tuning.Seed)
	session := loop.NewSession(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Tuning: tuning,
		Logger: logger,
	})
	err = session.Run(ctx)
	if errors.Is(err, loop.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
