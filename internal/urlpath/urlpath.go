// Package urlpath parses a raw request target into ordered path segments and a
// key/value argument map. It performs no percent-decoding: argument values travel
// through exactly as they appear on the wire, and a bare key with no '=' becomes
// a boolean flag.
package urlpath

import "strings"

// Arg is a single query argument: either a string value or a bare flag.
type Arg struct {
	Value string
	Flag  bool
}

type URL struct {
	segments []string
	args     map[string]Arg
}

// Parse splits a raw target ("path?query") into segments and arguments.
// Malformed input degrades to empty segments or arguments, never an error.
func Parse(target string) *URL {
	rawPath, rawQuery, _ := strings.Cut(target, "?")

	u := &URL{args: make(map[string]Arg)}

	for _, seg := range strings.Split(rawPath, "/") {
		if seg != "" {
			u.segments = append(u.segments, seg)
		}
	}

	if rawQuery == "" {
		return u
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if found {
			u.args[key] = Arg{Value: value}
		} else {
			u.args[key] = Arg{Flag: true}
		}
	}

	return u
}

// Segment returns the i-th path segment, or false if out of range.
func (u *URL) Segment(i int) (string, bool) {
	if i < 0 || i >= len(u.segments) {
		return "", false
	}
	return u.segments[i], true
}

func (u *URL) Segments() []string {
	return u.segments
}

// Arg returns the named argument, or false if absent.
func (u *URL) Arg(name string) (Arg, bool) {
	arg, ok := u.args[name]
	return arg, ok
}

// ArgValue returns the string value of the named argument. A bare flag or an
// absent argument both report false.
func (u *URL) ArgValue(name string) (string, bool) {
	arg, ok := u.args[name]
	if !ok || arg.Flag {
		return "", false
	}
	return arg.Value, true
}
