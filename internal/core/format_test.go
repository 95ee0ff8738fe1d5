package core

import "testing"

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
		{-1, "0 B"},
	}
	for _, c := range cases {
		if got := FormatSize(c.bytes); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.bytes, got, c.want)
		}
	}
}

func TestFormatKB(t *testing.T) {
	if got := FormatKB(2048); got != "2.0 MB" {
		t.Errorf("FormatKB(2048) = %q, want 2.0 MB", got)
	}
	if got := FormatKB(1); got != "1.0 KB" {
		t.Errorf("FormatKB(1) = %q, want 1.0 KB", got)
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "file", "files"); got != "file" {
		t.Errorf("Plural(1) = %q, want file", got)
	}
	if got := Plural(0, "file", "files"); got != "files" {
		t.Errorf("Plural(0) = %q, want files", got)
	}
	if got := Plural(3, "file", "files"); got != "files" {
		t.Errorf("Plural(3) = %q, want files", got)
	}
}
