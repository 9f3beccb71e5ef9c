package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/MrRedFox1223/wdash/internal/api"
	"github.com/MrRedFox1223/wdash/internal/config"
	"github.com/MrRedFox1223/wdash/internal/logging"
	"github.com/MrRedFox1223/wdash/internal/records"
	"github.com/MrRedFox1223/wdash/internal/session"
)

// appEnv bundles the wired-up collaborators every command needs.
type appEnv struct {
	cfg  config.Config
	log  *slog.Logger
	sess *session.Store
	cli  *api.Client
	recs *records.Store
}

// newEnv loads config, sets up logging, restores the persisted session and
// wires the API client and record store.
func newEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LogLevel)

	base, err := config.BaseDir()
	if err != nil {
		return nil, err
	}
	sess := session.NewStore(base)
	sess.Restore()
	if cur := sess.Current(); cur != nil {
		logger.Debug("session restored", "username", cur.Username)
	}

	cli := api.NewClient(cfg.API.BaseURL, sess)
	recs := records.NewStore(cli, sess.IsAdmin, printNotifier{})

	return &appEnv{cfg: cfg, log: logger, sess: sess, cli: cli, recs: recs}, nil
}

// mustEnv is newEnv for command run functions: setup failures are terminal.
func mustEnv() *appEnv {
	env, err := newEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return env
}

// printNotifier surfaces operation outcomes on the terminal: successes on
// stdout, errors on stderr. Nothing is fatal.
type printNotifier struct{}

func (printNotifier) Success(msg string) { fmt.Println(msg) }
func (printNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "Error: "+msg) }

// errOpFailed signals a failure the notifier already surfaced; Execute
// exits nonzero without reprinting it.
var errOpFailed = errors.New("operation failed")

// reportable reports whether Execute still needs to print err.
func reportable(err error) bool {
	return !errors.Is(err, errOpFailed)
}

// parseID parses a positive record ID argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", s)
	}
	return id, nil
}

// stdin is shared by all prompts. A single buffered reader keeps
// read-ahead from one prompt available to the next when stdin is a pipe
// or file rather than a terminal.
var stdin = bufio.NewReader(os.Stdin)

// promptLine prints a prompt on stderr and reads one line from r.
func promptLine(r *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
