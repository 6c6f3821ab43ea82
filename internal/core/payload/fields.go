package payload

import (
	"strconv"
	"strings"
	"time"
)

// Field pickers probe alternative key names in order and coerce the JSON
// scalar types the backend is known to emit (numbers as float64, numeric
// strings, booleans).

func (r Record) str(keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func (r Record) integer(keys ...string) int {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return 0
}

func (r Record) floating(keys ...string) float64 {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func (r Record) boolean(keys ...string) bool {
	for _, key := range keys {
		if v, ok := r[key].(bool); ok {
			return v
		}
	}
	return false
}

func (r Record) strSlice(keys ...string) []string {
	for _, key := range keys {
		seq, ok := r[key].([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(seq))
		for _, elem := range seq {
			if s, ok := elem.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (r Record) timestamp(keys ...string) time.Time {
	for _, key := range keys {
		s, ok := r[key].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
