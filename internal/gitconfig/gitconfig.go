// Package gitconfig reads the global git identity used as the default author.
package gitconfig

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/indaco/poet/internal/logging"
)

// Keys read from the global git configuration.
const (
	UserNameKey  = "user.name"
	UserEmailKey = "user.email"
)

// Reader looks up configuration values. Missing values are returned as "".
type Reader interface {
	Get(ctx context.Context, key string) string
}

// OSGit implements Reader by running "git config --global".
type OSGit struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// Verify OSGit implements Reader.
var _ Reader = (*OSGit)(nil)

// NewOSGit creates an OSGit using exec.CommandContext.
func NewOSGit() *OSGit {
	return &OSGit{execCommand: exec.CommandContext}
}

// Get returns the trimmed value of key, or "" if git fails or the key is unset.
func (g *OSGit) Get(ctx context.Context, key string) string {
	value, err := g.get(ctx, key)
	if err != nil {
		logging.FromContext(ctx).Debug("git config lookup failed", "key", key, "err", err)
		return ""
	}
	return value
}

func (g *OSGit) get(ctx context.Context, key string) (string, error) {
	cmd := g.execCommand(ctx, "git", "config", "--global", key)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return "", fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return "", fmt.Errorf("git config %s failed: %w", key, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// MapReader is a static Reader, handy for tests and non-git environments.
type MapReader map[string]string

// Get returns the value stored for key.
func (m MapReader) Get(_ context.Context, key string) string {
	return m[key]
}

// DefaultAuthor formats the git identity as "Name <email>".
// It returns "" when neither the name nor the email is configured.
func DefaultAuthor(ctx context.Context, r Reader) string {
	name := r.Get(ctx, UserNameKey)
	email := r.Get(ctx, UserEmailKey)
	if name == "" && email == "" {
		return ""
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
