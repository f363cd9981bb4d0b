package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"folio/internal/relay"
	"folio/internal/server"
	"folio/internal/site"
	"folio/internal/telemetry"
	"folio/internal/ui"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		Short:         "Pete's portfolio, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}
	root.AddCommand(serveCmd())
	return root
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := site.Load()
	if err != nil {
		return err
	}
	// The TUI owns the terminal, so logs are discarded rather than drawn
	// over the screen.
	client := relay.NewClient(s.RelayURL, zerolog.New(io.Discard))
	model := ui.NewAppModel(s, client).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func serveCmd() *cobra.Command {
	var addr, assetsDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio as a website",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdown, err := telemetry.Setup(ctx, log)
			if err != nil {
				return err
			}
			// Flush spans even after the signal context is canceled.
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				shutdown(flushCtx)
			}()

			s, err := site.Load()
			if err != nil {
				return err
			}
			srv, err := server.New(server.Config{
				Addr:      addr,
				AssetsDir: assetsDir,
				Site:      s,
				Relay:     relay.NewClient(s.RelayURL, log),
				Logger:    log,
			})
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&assetsDir, "assets", "assets", "directory holding the resume PDF and images")
	return cmd
}
