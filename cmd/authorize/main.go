package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"leetcode-revision/internal/adapter/gcal"
	"leetcode-revision/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var redirectURI string

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "🔑 Obtain a Google Calendar refresh token",
		Long: `Runs the one-time OAuth consent flow for the revision job.

Open the printed URL, grant calendar access, and copy the refresh token
into GOOGLE_REFRESH_TOKEN. GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadAuth()
			if err != nil {
				return err
			}
			if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
				return errors.New("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are required")
			}
			if redirectURI != "" {
				cfg.GoogleRedirectURI = redirectURI
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return authorize(ctx, cmd, gcal.Credentials{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				RedirectURL:  cfg.GoogleRedirectURI,
			})
		},
	}
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "override GOOGLE_REDIRECT_URI (must be registered with the OAuth client)")
	return cmd
}

func authorize(ctx context.Context, cmd *cobra.Command, creds gcal.Credentials) error {
	redirect, err := url.Parse(creds.RedirectURL)
	if err != nil || redirect.Host == "" {
		return fmt.Errorf("invalid redirect URI %q", creds.RedirectURL)
	}

	auth, err := gcal.NewAuthorizer(creds.OAuthConfig())
	if err != nil {
		return err
	}

	path := redirect.Path
	if path == "" {
		path = "/"
	}

	tokens := make(chan *oauth2.Token, 1)
	mux := http.NewServeMux()
	mux.Handle(path, auth.CallbackHandler(tokens))

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", redirect.Host, err)
	}
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cmd.PrintErrf("❌ callback server: %v\n", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	cmd.Println("Open this URL in your browser to grant calendar access:")
	cmd.Println(auth.AuthURL())
	cmd.Printf("Waiting for Google OAuth redirect on %s ...\n", creds.RedirectURL)

	select {
	case token := <-tokens:
		cmd.Println("✅ Refresh Token:", token.RefreshToken)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
