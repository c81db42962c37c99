package gateway

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/lib/pq"
)

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "bad conn", err: driver.ErrBadConn, want: true},
		{name: "wrapped deadline", err: fmt.Errorf("select: %w", context.DeadlineExceeded), want: true},
		{name: "dial error", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, want: true},
		{name: "pq connection exception", err: &pq.Error{Code: "08001"}, want: true},
		{name: "pq too many connections", err: &pq.Error{Code: "53300"}, want: true},
		{name: "pq admin shutdown", err: &pq.Error{Code: "57P01"}, want: true},
		{name: "pq unique violation", err: &pq.Error{Code: "23505"}, want: false},
		{name: "pq syntax error", err: &pq.Error{Code: "42601"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUnavailable(tt.err); got != tt.want {
				t.Fatalf("isUnavailable(%v)=%v want=%v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassify_MatchesKindAndCause(t *testing.T) {
	cause := &pq.Error{Code: "23505", Message: "duplicate key value"}
	err := error(classify(context.Background(), "add-color", "insert_color", cause))

	if !errors.Is(err, ErrStatement) {
		t.Fatalf("expected ErrStatement")
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		t.Fatalf("expected pq cause to be reachable, got %v", err)
	}
}

func TestClassify_ExpiredContextIsUnavailable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := classify(ctx, "", "list_colors", errors.New("canceling query due to user request"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestError_Message(t *testing.T) {
	err := classify(context.Background(), "add-color", "insert_color", errors.New("duplicate key"))

	want := "statement execution failed: task add-color: statement insert_color: duplicate key"
	if err.Error() != want {
		t.Fatalf("unexpected message:\nwant: %s\ngot:  %s", want, err.Error())
	}
}
