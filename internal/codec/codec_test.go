package codec

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// abs builds an absolute path valid on the test platform.
func abs(parts ...string) string {
	root := string(filepath.Separator)
	if vol := filepath.VolumeName(mustAbs()); vol != "" {
		root = vol + `\`
	}
	return filepath.Join(append([]string{root}, parts...)...)
}

func mustAbs() string {
	p, _ := filepath.Abs(".")
	return p
}

func TestRoundTrip(t *testing.T) {
	paths := []string{
		abs("Users", "demo", "Library", "Caches", "com.example.TestApp"),
		abs("Users", "demo", "Library", "Preferences", "com.example.TestApp.plist"),
		abs("Applications", "Test App.app"),
	}

	got, err := Decode(Encode(paths), "round-trip")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(got, paths) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", got, paths)
	}
}

func TestDecodeWrappedToken(t *testing.T) {
	paths := []string{
		abs("Users", "demo", "Library", "Logs", "TestApp"),
		abs("Users", "demo", "Library", "Containers", "com.example.TestApp"),
	}
	token := Encode(paths)

	// Simulate an encoder that wraps its output at a fixed line width.
	var wrapped strings.Builder
	for i, r := range token {
		if i > 0 && i%16 == 0 {
			wrapped.WriteByte('\n')
		}
		wrapped.WriteRune(r)
	}

	got, err := Decode(wrapped.String(), "wrapped")
	if err != nil {
		t.Fatalf("Decode of wrapped token failed: %v", err)
	}
	if !reflect.DeepEqual(got, paths) {
		t.Errorf("wrapped token mismatch:\n got %v\nwant %v", got, paths)
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(Encode(nil), "empty")
	if err != nil {
		t.Fatalf("Decode of empty encoding failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestDecodeInvalidBase64(t *testing.T) {
	_, err := Decode("!!!not-base64!!!", "bad")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want DecodeError", err)
	}
}

func TestDecodeRelativePath(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("relative/path\n" + abs("ok")))
	_, err := Decode(token, "uninstall preview")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if ve.Context != "uninstall preview" {
		t.Errorf("context = %q, want %q", ve.Context, "uninstall preview")
	}
	if ve.Path != "relative/path" {
		t.Errorf("offending path = %q, want relative/path", ve.Path)
	}
}

func TestDecodeNeverReturnsPartialResult(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte(abs("ok") + "\nrelative"))
	got, err := Decode(token, "partial")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got != nil {
		t.Errorf("got partial result %v, want nil", got)
	}
}
