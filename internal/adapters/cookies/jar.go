package cookies

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/evaldash/internal/ports"
)

const (
	jarDirMode  = 0o700
	jarFileMode = 0o600
)

// Jar keeps a browser Cookie header on disk so API calls can reuse the
// logged-in session.
type Jar struct {
	path string
	mu   sync.RWMutex
}

var _ ports.TokenStore = (*Jar)(nil)

func NewJar(path string) *Jar {
	return &Jar{path: filepath.Clean(path)}
}

// Save validates header and replaces the stored cookies.
func (j *Jar) Save(ctx context.Context, header string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	normalized, err := normalizeHeader(header)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), jarDirMode); err != nil {
		return fmt.Errorf("create cookie directory: %w", err)
	}
	if err := os.WriteFile(j.path, []byte(normalized+"\n"), jarFileMode); err != nil {
		return fmt.Errorf("write cookie file: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(j.path, jarFileMode); err != nil {
		return fmt.Errorf("chmod cookie file: %w", err)
	}

	return nil
}

func (j *Jar) CookieHeader(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	data, err := os.ReadFile(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read cookie file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (j *Jar) Token(ctx context.Context, name string) (string, error) {
	header, err := j.CookieHeader(ctx)
	if err != nil || header == "" {
		return "", err
	}

	parsed, err := http.ParseCookie(header)
	if err != nil {
		return "", fmt.Errorf("parse cookie file: %w", err)
	}
	for _, cookie := range parsed {
		if cookie.Name == name {
			if decoded, err := url.PathUnescape(cookie.Value); err == nil {
				return decoded, nil
			}
			return cookie.Value, nil
		}
	}

	return "", nil
}

func (j *Jar) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.Remove(j.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete cookie file: %w", err)
	}

	return nil
}

// normalizeHeader accepts either a bare "a=b; c=d" list or a full
// "Cookie: a=b" line as copied from browser dev tools.
func normalizeHeader(header string) (string, error) {
	trimmed := strings.TrimSpace(header)
	if name, rest, ok := strings.Cut(trimmed, ":"); ok && strings.EqualFold(strings.TrimSpace(name), "cookie") {
		trimmed = strings.TrimSpace(rest)
	}
	if trimmed == "" {
		return "", errors.New("cookie header is empty")
	}

	parsed, err := http.ParseCookie(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse cookie header: %w", err)
	}

	parts := make([]string, 0, len(parsed))
	for _, cookie := range parsed {
		parts = append(parts, cookie.String())
	}

	return strings.Join(parts, "; "), nil
}
