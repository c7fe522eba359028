package aio

import (
	"errors"
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	t.Setenv("AIO_USERNAME", "alice")
	t.Setenv("AIO_KEY", "k123")
	t.Setenv("AIO_URL", "https://staging.example.test")
	t.Setenv("AIO_VERSION", "v2")
	t.Setenv("AIO_TIMEOUT", "5s")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv returned error: %v", err)
	}
	if c.Username() != "alice" {
		t.Fatalf("unexpected username %q", c.Username())
	}
	if c.BaseURL() != "https://staging.example.test" {
		t.Fatalf("unexpected base URL %q", c.BaseURL())
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", c.http.Timeout)
	}
}

func TestNewFromEnv_MissingKey(t *testing.T) {
	t.Setenv("AIO_USERNAME", "alice")
	t.Setenv("AIO_KEY", "")

	if _, err := NewFromEnv(); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestNewFromEnv_ExplicitOptionsWin(t *testing.T) {
	t.Setenv("AIO_USERNAME", "alice")
	t.Setenv("AIO_KEY", "k123")
	t.Setenv("AIO_URL", "https://env.example.test")

	c, err := NewFromEnv(WithBaseURL("https://flag.example.test"))
	if err != nil {
		t.Fatalf("NewFromEnv returned error: %v", err)
	}
	if c.BaseURL() != "https://flag.example.test" {
		t.Fatalf("explicit option did not win: %q", c.BaseURL())
	}
}
