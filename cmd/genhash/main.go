// Command genhash prints the environment values an operator needs to lock down
// the admin API: a bcrypt ADMIN_PASSWORD_HASH and, with -secrets, fresh
// SESSION_ENCRYPTION_KEY and JWT_SECRET values.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"team-showcase.backend/pkg/crypto"
)

var (
	generateHashFn  = crypto.HashPassword
	randomTokenFn   = crypto.GenerateRandomToken
	isTerminal      = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	readPasswordTTY = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
)

var errEmptyPassword = errors.New("password must not be empty")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("genhash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	secrets := fs.Bool("secrets", false, "also print SESSION_ENCRYPTION_KEY and JWT_SECRET")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := resolvePassword(fs.Args(), stdin, stderr)
	if err != nil {
		return err
	}

	hash, err := generateHashFn(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	fmt.Fprintf(stdout, "ADMIN_PASSWORD_HASH=%s\n", hash)

	if *secrets {
		sessionKey, err := randomTokenFn(32)
		if err != nil {
			return err
		}
		jwtSecret, err := randomTokenFn(32)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "SESSION_ENCRYPTION_KEY=%s\n", sessionKey)
		fmt.Fprintf(stdout, "JWT_SECRET=%s\n", jwtSecret)
	}
	return nil
}

// resolvePassword takes the first argument, else prompts on a terminal, else
// reads one line from stdin so the tool can sit in a pipeline.
func resolvePassword(args []string, stdin io.Reader, prompt io.Writer) (string, error) {
	var password string
	switch {
	case len(args) > 0:
		password = args[0]
	case stdin == os.Stdin && isTerminal():
		fmt.Fprint(prompt, "Admin password: ")
		raw, err := readPasswordTTY()
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	default:
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return "", errEmptyPassword
	}
	return password, nil
}
