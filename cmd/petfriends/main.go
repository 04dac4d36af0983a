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
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

const authKeyEnv = "PETFRIENDS_AUTH_KEY"

var ErrNoAuthKey = errors.New("no API key, use --auth-key or " + authKeyEnv)

// app holds state shared by all sub-commands.
type app struct {
	options *petfriends.Options
	verbose bool
	authKey string

	zap    *zap.Logger
	logger logr.Logger
}

func (a *app) setupLogging() error {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	a.zap = logger
	a.logger = zapr.NewLogger(logger)

	return nil
}

func (a *app) syncLogging() {
	if a.zap != nil {
		_ = a.zap.Sync()
	}
}

func (a *app) client() (*petfriends.Client, error) {
	return petfriends.New(a.options, petfriends.WithLogger(a.logger))
}

func (a *app) key() (string, error) {
	if a.authKey != "" {
		return a.authKey, nil
	}

	if key := os.Getenv(authKeyEnv); key != "" {
		return key, nil
	}

	return "", ErrNoAuthKey
}

// report prints the status line and raw body, and fails on anything but 200.
func report[T any](cmd *cobra.Command, response *petfriends.Response[T]) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%d %s\n", response.StatusCode, http.StatusText(response.StatusCode))

	if response.Raw != "" {
		fmt.Fprintln(out, response.Raw)
	}

	return response.Expect(http.StatusOK)
}

func newRootCommand() *cobra.Command {
	a := &app{
		options: petfriends.NewOptions(),
		logger:  logr.Discard(),
	}

	cmd := &cobra.Command{
		Use:           "petfriends",
		Short:         "Call the PetFriends API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.syncLogging()
		},
	}

	flags := cmd.PersistentFlags()
	a.options.AddFlags(flags)
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&a.authKey, "auth-key", "", "API key, defaults to $"+authKeyEnv)

	cmd.AddCommand(
		newKeyCommand(a),
		newListCommand(a),
		newAddCommand(a),
		newSetPhotoCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newServeFakeCommand(a),
	)

	return cmd
}

func main() {
	cmd := newRootCommand()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
