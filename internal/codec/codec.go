// Package codec encodes resolved path lists as single opaque text tokens so
// they can cross a process boundary (preview step to privileged execution
// step) without shell-escaping hazards.
package codec

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
)

// DecodeError reports a token that is not valid base64 payload.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("transport token is not valid base64: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError reports a decoded payload containing a non-absolute path.
// Context identifies the payload source for diagnostics.
type ValidationError struct {
	Context string
	Path    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: decoded payload contains non-absolute path %q", e.Context, e.Path)
}

// Encode joins paths with newlines and wraps the result in base64. The
// token contains no shell metacharacters and is safe to pass as a single
// argument or environment value. An empty input encodes to an empty token.
func Encode(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(paths, "\n")))
}

// Decode reverses Encode. It is strict: a token that does not decode as
// base64 fails with DecodeError, and a payload line that is not an absolute
// path fails with ValidationError; no partial result is returned in either
// case. An empty payload decodes to an empty list.
//
// Line breaks inside the token itself are stripped first, so tokens from
// encoders that wrap output at a fixed width decode identically to
// unwrapped ones.
func Decode(token, context string) ([]string, error) {
	raw, err := base64.StdEncoding.DecodeString(stripSpace(token))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var paths []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if !filepath.IsAbs(line) {
			return nil, &ValidationError{Context: context, Path: line}
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// stripSpace removes all ASCII whitespace from a token, normalizing both
// fixed-width-wrapped and unwrapped base64 output.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
