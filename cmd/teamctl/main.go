// Command teamctl manages the team showcase from a terminal: the admin panels
// (profile, members, achievements, applications, stats), a health monitor and
// the public page with its join form.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"team-showcase.backend/pkg/api/client"
)

const requestTimeout = 15 * time.Second

var buildVersion = "dev"

var (
	isTerminal   = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	readPassword = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
)

var errUsage = errors.New("usage")

type cli struct {
	ctx    context.Context
	out    io.Writer
	errOut io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 2
	}
	c := &cli{ctx: ctx, out: stdout, errOut: stderr}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "login":
		err = c.commandLogin(rest)
	case "logout":
		err = c.commandLogout(rest)
	case "profile":
		err = c.commandProfile(rest)
	case "members":
		err = c.commandMembers(rest)
	case "achievements":
		err = c.commandAchievements(rest)
	case "applications":
		err = c.commandApplications(rest)
	case "stats":
		err = c.commandStats(rest)
	case "health":
		err = c.commandHealth(rest)
	case "show":
		err = c.commandShow(rest)
	case "apply":
		err = c.commandApply(rest)
	case "version", "--version", "-v":
		fmt.Fprintln(stdout, strings.TrimSpace(buildVersion))
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", cmd)
		printUsage(stderr)
		return 2
	}

	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
			return 2
		}
		c.fail(err)
		return 1
	}
	return 0
}

// ok and fail print the one-line status banner every panel ends with.
func (c *cli) ok(format string, args ...any) {
	fmt.Fprintf(c.out, "✓ "+format+"\n", args...)
}

func (c *cli) fail(err error) {
	if client.IsStatus(err, http.StatusUnauthorized) {
		fmt.Fprintf(c.errOut, "✗ %v (run 'teamctl login')\n", err)
		return
	}
	fmt.Fprintf(c.errOut, "✗ %v\n", err)
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// client builds an API client from the saved configuration, carrying the saved
// token when there is one.
func (c *cli) client() (*client.Client, cliConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cliConfig{}, err
	}
	api, err := client.New(cfg.APIBaseURL, client.WithToken(cfg.AccessToken))
	if err != nil {
		return nil, cliConfig{}, err
	}
	return api, cfg, nil
}

func (c *cli) timeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.ctx, requestTimeout)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "teamctl %s\n\n", buildVersion)
	fmt.Fprint(w, `Usage:
	teamctl login [-password secret] [-api http://localhost:3001]
	teamctl logout
	teamctl profile show
	teamctl profile update [-name N] [-description D] [-founded Y] [-logo URL] [-tagline T] [-contact-email E]
	teamctl members list [-all]
	teamctl members create -name N -role R [-avatar URL] [-signature S] [-blog URL] [-direction D]
	teamctl members update -id ID [-name N] [-role R] [-avatar URL] [-signature S] [-blog URL] [-direction D] [-active=true|false]
	teamctl members delete -id ID
	teamctl members purge -id ID
	teamctl achievements list
	teamctl achievements create -year 2024 -title T -award A [-description D] [-location L]
	teamctl achievements update -id ID [-year Y] [-title T] [-award A] [-description D] [-location L]
	teamctl achievements delete -id ID
	teamctl applications list [-status pending|reviewed|approved|rejected]
	teamctl applications review -id ID -status S [-notes N]
	teamctl applications delete -id ID
	teamctl stats
	teamctl health [-watch] [-interval 5s]
	teamctl show
	teamctl apply -name N -email E -skills S [-phone P] [-message M] [-key K]
	teamctl version

Environment:
	TEAMCTL_API     API base URL, overrides the saved one
	TEAMCTL_CONFIG  config file path (default <user config dir>/teamctl/config.json)
`)
}
