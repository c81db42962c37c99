package gateway

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Row maps column names to the values the driver produced.
type Row map[string]any

// Rows is the ordered result of one statement.
type Rows []Row

// First returns the first row when the statement produced any.
func (r Rows) First() (Row, bool) {
	if len(r) == 0 {
		return nil, false
	}
	return r[0], true
}

func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}

func (r Row) Int64(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		return parseInt64(string(v))
	case string:
		return parseInt64(v)
	default:
		return 0
	}
}

func (r Row) Time(col string) time.Time {
	switch v := r[col].(type) {
	case time.Time:
		return v
	case []byte:
		return parseTime(string(v))
	case string:
		return parseTime(v)
	default:
		return time.Time{}
	}
}

// Int64s decodes an INT[] column, which lib/pq hands back as an array literal.
func (r Row) Int64s(col string) []int64 {
	switch v := r[col].(type) {
	case nil:
		return nil
	case []int64:
		return append([]int64(nil), v...)
	case pq.Int64Array:
		return append([]int64(nil), v...)
	case []byte, string:
		var arr pq.Int64Array
		if err := arr.Scan(v); err != nil {
			return nil
		}
		return []int64(arr)
	default:
		return nil
	}
}

func parseInt64(raw string) int64 {
	out, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return out
}

func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano, "2006-01-02 15:04:05Z07:00"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
