package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/emzola/bookmanager/api"
	"github.com/emzola/bookmanager/clients"
	"github.com/emzola/bookmanager/config"
	"github.com/emzola/bookmanager/internal/jsonlog"
	"github.com/emzola/bookmanager/internal/storage"
	"github.com/emzola/bookmanager/service"
	"github.com/emzola/bookmanager/session"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// settings are read from the environment and overridden by flags.
type settings struct {
	APIURL      string        `env:"API_URL" env-default:"http://localhost:3000/api"`
	Timeout     time.Duration `env:"API_TIMEOUT" env-default:"15s"`
	Credentials string        `env:"BOOKCTL_CREDENTIALS"`
	LogLevel    string        `env:"LOG_LEVEL" env-default:"warn"`
}

// env holds what the commands share. Fields left nil are built from
// settings before a command runs; tests fill them in.
type env struct {
	in           io.Reader
	out          io.Writer
	errOut       io.Writer
	client       *api.Client
	store        storage.Store
	logger       *jsonlog.Logger
	readPassword func(prompt string) (string, error)

	settings settings
	svc      service.Service
	sess     *session.Session
	lines    *bufio.Reader
}

func newRootCommand(e *env) *cobra.Command {
	if err := cleanenv.ReadEnv(&e.settings); err != nil {
		e.settings.APIURL = "http://localhost:3000/api"
		e.settings.Timeout = 15 * time.Second
	}

	root := &cobra.Command{
		Use:           "bookctl",
		Short:         "Manage the book catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&e.settings.APIURL, "api-url", e.settings.APIURL, "Base URL of the remote API")
	root.PersistentFlags().DurationVar(&e.settings.Timeout, "timeout", e.settings.Timeout, "Timeout for each API request")
	root.PersistentFlags().StringVar(&e.settings.Credentials, "credentials", e.settings.Credentials, "Path of the credentials file")
	root.PersistentFlags().StringVar(&e.settings.LogLevel, "log-level", e.settings.LogLevel, "Minimum level of diagnostics written to stderr")

	root.AddCommand(
		newLoginCommand(e),
		newLogoutCommand(e),
		newRegisterCommand(e),
		newWhoamiCommand(e),
		newVerifyCommand(e),
		newBooksCommand(e),
		newCategoriesCommand(e),
	)
	return root
}

// setup builds the access layer and restores the session from the
// credentials file, then binds both to the command's context.
func (e *env) setup(cmd *cobra.Command) error {
	if e.in == nil {
		e.in = cmd.InOrStdin()
	}
	if e.out == nil {
		e.out = cmd.OutOrStdout()
	}
	if e.errOut == nil {
		e.errOut = cmd.ErrOrStderr()
	}
	e.lines = bufio.NewReader(e.in)
	if e.readPassword == nil {
		e.readPassword = e.terminalPassword
	}
	if e.logger == nil {
		level, err := jsonlog.ParseLevel(e.settings.LogLevel)
		if err != nil {
			return err
		}
		e.logger = jsonlog.New(e.errOut, level)
	}
	if e.client == nil {
		e.client = api.New(e.settings.APIURL, clients.NewHTTPClient(e.settings.Timeout))
	}
	if e.store == nil {
		path, err := credentialsPath(e.settings.Credentials)
		if err != nil {
			return err
		}
		e.store = storage.NewFile(path)
	}
	e.svc = service.New(config.Config{}, e.logger, e.client, nil)
	e.sess = session.New(e.client.Auth(), e.store, e.logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = storage.NewContext(ctx, e.store)
	if err := e.sess.Init(ctx); err != nil {
		return err
	}
	cmd.SetContext(session.NewContext(ctx, e.sess))
	return nil
}

// credentialsPath resolves the credentials file, defaulting to
// bookmanager/credentials.yaml under the user's config directory.
func credentialsPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bookmanager", "credentials.yaml"), nil
}

// prompt writes label and reads one line of input.
func (e *env) prompt(label string) (string, error) {
	fmt.Fprint(e.out, label)
	line, err := e.lines.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// terminalPassword reads a password without echo when stdin is a terminal.
func (e *env) terminalPassword(prompt string) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return e.prompt(prompt)
	}
	fmt.Fprint(e.out, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(e.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// requireAuthenticatedUser fails commands that need a logged in session.
func (e *env) requireAuthenticatedUser() error {
	if !e.sess.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}
