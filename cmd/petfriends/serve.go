/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends/fake"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var ErrUserFormat = errors.New("user must be email:password")

// parseUser splits an email:password pair; the password may contain colons.
func parseUser(s string) (string, string, error) {
	email, password, ok := strings.Cut(s, ":")
	if !ok || email == "" || password == "" {
		return "", "", fmt.Errorf("%w: %q", ErrUserFormat, s)
	}

	return email, password, nil
}

func newServeFakeCommand(a *app) *cobra.Command {
	var (
		listen  string
		users   []string
		lenient bool
	)

	cmd := &cobra.Command{
		Use:   "serve-fake",
		Short: "Serve an in-memory PetFriends API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []fake.Option{
				fake.WithLogger(a.logger.WithName("fake")),
			}

			for _, user := range users {
				email, password, err := parseUser(user)
				if err != nil {
					return err
				}

				opts = append(opts, fake.WithUser(email, password))
			}

			if lenient {
				opts = append(opts, fake.WithLenientValidation())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler, err := fake.New(ctx, opts...)
			if err != nil {
				return err
			}

			listener, err := net.Listen("tcp", listen)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", listen, err)
			}

			return serve(ctx, a, listener, handler)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8080", "Address to listen on")
	cmd.Flags().StringArrayVar(&users, "user", nil, "Account to register as email:password, may be repeated")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Accept invalid pet fields like the live service")

	return cmd
}

// serve runs the handler until the context is cancelled.
func serve(ctx context.Context, a *app, listener net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errs := make(chan error, 1)

	go func() {
		errs <- server.Serve(listener)
	}()

	a.logger.Info("fake server listening", "address", listener.Addr().String())

	select {
	case err := <-errs:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}

	return nil
}
