package logger

import (
	"testing"
)

func TestNewBuildsUsableLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		l := New(Opts{Env: env})
		if l == nil {
			t.Fatalf("New returned nil for env %q", env)
		}
		l.Debug("debug message", "key", "value")
		l.Info("info message", "key", "value")
	}
}

func TestNewWithSentryURL(t *testing.T) {
	// A syntactically valid DSN is enough to take the sentry handler path;
	// nothing is actually delivered.
	l := New(Opts{Env: "production", SentryURL: "https://public@example.invalid/1"})
	if l == nil {
		t.Fatal("New returned nil")
	}
	l.Error("error message", "key", "value")
}

func TestWithComponent(t *testing.T) {
	l := New(Opts{})
	scoped := l.WithComponent("Test")
	if scoped == nil {
		t.Fatal("WithComponent returned nil")
	}
	scoped.Info("scoped message")
}
