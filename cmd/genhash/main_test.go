package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun_HashFromArgument(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"s3cret"}, strings.NewReader(""), &out, &errOut))

	line := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(line, "ADMIN_PASSWORD_HASH="), line)
	hash := strings.TrimPrefix(line, "ADMIN_PASSWORD_HASH=")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestRun_HashFromPipedStdin(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, strings.NewReader("piped-pass\n"), &out, &bytes.Buffer{}))

	hash := strings.TrimPrefix(strings.TrimSpace(out.String()), "ADMIN_PASSWORD_HASH=")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("piped-pass")))
}

func TestRun_Secrets(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-secrets", "pw"}, strings.NewReader(""), &out, &bytes.Buffer{}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "SESSION_ENCRYPTION_KEY="))
	assert.Len(t, strings.TrimPrefix(lines[1], "SESSION_ENCRYPTION_KEY="), 64)
	assert.True(t, strings.HasPrefix(lines[2], "JWT_SECRET="))
}

func TestRun_Errors(t *testing.T) {
	err := run(nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errEmptyPassword)

	err = run([]string{"-bogus"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)

	orig := generateHashFn
	t.Cleanup(func() { generateHashFn = orig })
	generateHashFn = func(string) (string, error) { return "", errors.New("boom") }
	err = run([]string{"pw"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to hash password")
}

func TestRun_SecretsRandomFailure(t *testing.T) {
	orig := randomTokenFn
	t.Cleanup(func() { randomTokenFn = orig })
	randomTokenFn = func(int) (string, error) { return "", errors.New("no entropy") }

	err := run([]string{"-secrets", "pw"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "no entropy")
}

func TestResolvePassword_Terminal(t *testing.T) {
	origTTY, origRead := isTerminal, readPasswordTTY
	t.Cleanup(func() { isTerminal, readPasswordTTY = origTTY, origRead })
	isTerminal = func() bool { return true }
	readPasswordTTY = func() ([]byte, error) { return []byte("typed"), nil }

	var prompt bytes.Buffer
	got, err := resolvePassword(nil, os.Stdin, &prompt)
	require.NoError(t, err)
	assert.Equal(t, "typed", got)
	assert.Contains(t, prompt.String(), "Admin password")

	readPasswordTTY = func() ([]byte, error) { return nil, errors.New("tty gone") }
	_, err = resolvePassword(nil, os.Stdin, &prompt)
	assert.ErrorContains(t, err, "tty gone")
}
