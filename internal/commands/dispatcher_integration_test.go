package commands

import (
	"context"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
)

type refreshContentCommand struct {
	Kind string
}

func (refreshContentCommand) Type() string { return "site.content.refresh" }

func (refreshContentCommand) Validate() error { return nil }

func TestDispatcherRetriesTransientReads(t *testing.T) {
	cases := []struct {
		name         string
		failures     int
		retries      int
		wantAttempts int
		wantErr      bool
	}{
		{name: "recovers after one failed read", failures: 1, retries: 1, wantAttempts: 2},
		{name: "gives up once retries are spent", failures: 10, retries: 2, wantAttempts: 3, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var attempts int
			handler := NewHandler(func(_ context.Context, msg refreshContentCommand) error {
				attempts++
				if attempts <= tc.failures {
					return fmt.Errorf("read %s: %w", msg.Kind, fs.ErrClosed)
				}
				return nil
			},
				WithTimeout[refreshContentCommand](time.Second),
				WithOperation[refreshContentCommand]("content.refresh"),
			)

			sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(tc.retries))
			defer sub.Unsubscribe()

			err := dispatcher.Dispatch(context.Background(), refreshContentCommand{Kind: "posts"})
			if tc.wantErr && err == nil {
				t.Fatal("expected dispatch error after retries were exhausted")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected dispatch to succeed, got %v", err)
			}
			if attempts != tc.wantAttempts {
				t.Fatalf("expected %d attempts, got %d", tc.wantAttempts, attempts)
			}
		})
	}
}
