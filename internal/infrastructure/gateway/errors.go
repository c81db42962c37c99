package gateway

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

var (
	// ErrUnavailable marks failures caused by missing connectivity.
	ErrUnavailable = errors.New("database unavailable")
	// ErrStatement marks failures raised while executing a statement.
	ErrStatement = errors.New("statement execution failed")
)

// Error carries the failure kind plus the task and statement it came from.
// errors.Is matches both Kind and the driver cause.
type Error struct {
	Kind      error
	Task      string
	Statement string
	Err       error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Task != "" {
		b.WriteString(": task ")
		b.WriteString(e.Task)
	}
	if e.Statement != "" {
		b.WriteString(": statement ")
		b.WriteString(e.Statement)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// classify picks the failure kind. An expired or cancelled context means the
// database never answered in time, whatever the driver reported.
func classify(ctx context.Context, task, statement string, err error) *Error {
	kind := ErrStatement
	if isUnavailable(err) || ctx.Err() != nil {
		kind = ErrUnavailable
	}
	return &Error{Kind: kind, Task: task, Statement: statement, Err: err}
}

func isUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		// 08: connection exception, 53300: too_many_connections, 57P: operator intervention.
		return pqErr.Code.Class() == "08" || code == "53300" || strings.HasPrefix(code, "57P")
	}

	return false
}
