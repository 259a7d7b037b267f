package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/icongen"
	"seehuhn.de/go/icongen/icon"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	opts := icongen.Options{Dir: dir, Variants: []icon.Variant{icon.Splash}}
	if err := run(&buf, opts); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	created := "Created: " + filepath.Join(dir, "splash_icon.png") + " (512x512)"
	for _, want := range []string{created, "Done!", "dart run flutter_launcher_icons"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "splash_icon.png")); err != nil {
		t.Error(err)
	}
}

func TestRunError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := run(&buf, icongen.Options{Dir: filepath.Join(file, "icon")})
	if err == nil {
		t.Fatal("expected an error")
	}
	if strings.Contains(buf.String(), "Done!") {
		t.Error("reported success after a failure")
	}
}
