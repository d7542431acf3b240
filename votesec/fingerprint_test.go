// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votesec

import (
	"strings"
	"testing"
)

// fakeEnv is a fixed Environment for deterministic fingerprint tests.
type fakeEnv struct {
	userAgent string
	language  string
	width     int
	height    int
	tzOffset  int
	render    string
	cpus      int
	memoryGB  int
}

func (e fakeEnv) UserAgent() string          { return e.userAgent }
func (e fakeEnv) Language() string           { return e.language }
func (e fakeEnv) ScreenSize() (int, int)     { return e.width, e.height }
func (e fakeEnv) TimezoneOffsetMinutes() int { return e.tzOffset }
func (e fakeEnv) RenderDigest() string       { return e.render }
func (e fakeEnv) NumCPU() int                { return e.cpus }
func (e fakeEnv) DeviceMemoryGB() int        { return e.memoryGB }

func testEnv() fakeEnv {
	return fakeEnv{
		userAgent: "Mozilla/5.0 (X11; Linux x86_64)",
		language:  "fr-FR",
		width:     1920,
		height:    1080,
		tzOffset:  -60,
		render:    "data:image/png;base64,AAAA",
		cpus:      8,
		memoryGB:  16,
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	env := testEnv()

	fp1 := Fingerprint(env)
	fp2 := Fingerprint(env)

	if fp1 != fp2 {
		t.Errorf("Fingerprint not deterministic: %s vs %s", fp1, fp2)
	}
	if len(fp1) != fingerprintLength {
		t.Errorf("Expected %d chars, got %d", fingerprintLength, len(fp1))
	}
}

func TestFingerprintVariesWithSignals(t *testing.T) {
	// Truncating the base64 output to 32 chars means only the first 24
	// bytes of the joined signals can influence the fingerprint. A short
	// user agent keeps the language and screen fields inside that window.
	short := testEnv()
	short.userAgent = "ua"
	base := Fingerprint(short)

	tests := []struct {
		name string
		env  fakeEnv
	}{
		{"different user agent", func() fakeEnv { e := short; e.userAgent = "xy"; return e }()},
		{"different language", func() fakeEnv { e := short; e.language = "en-US"; return e }()},
		{"different screen", func() fakeEnv { e := short; e.width = 1280; e.height = 720; return e }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if fp := Fingerprint(tt.env); fp == base {
				t.Error("Expected a different fingerprint")
			}
		})
	}
}

func TestFingerprintIgnoresSignalsPastTruncation(t *testing.T) {
	// With a long user agent the later signals fall beyond the 24-byte
	// window and cannot change the result.
	a := testEnv()
	b := testEnv()
	b.cpus = 2
	b.memoryGB = 4

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("Signals past the truncation window changed the fingerprint")
	}
}

func TestFingerprintDegradedSignals(t *testing.T) {
	// A fully degraded environment (every signal unavailable) must still
	// produce a well-formed fingerprint. The joined signals are shorter
	// than the truncation window, so the encoding comes out shorter too.
	fp := Fingerprint(fakeEnv{})

	if fp == "" {
		t.Error("Expected a non-empty fingerprint")
	}
	if len(fp) > fingerprintLength {
		t.Errorf("Expected at most %d chars, got %d", fingerprintLength, len(fp))
	}
	if fp != Fingerprint(fakeEnv{}) {
		t.Error("Degraded fingerprint not deterministic")
	}
}

func TestHostEnvironment(t *testing.T) {
	env := HostEnvironment{}

	// No signal may panic, and the derived fingerprint must be stable
	// within one process.
	fp1 := Fingerprint(env)
	fp2 := Fingerprint(env)

	if fp1 != fp2 {
		t.Errorf("Host fingerprint unstable: %s vs %s", fp1, fp2)
	}
	if !strings.Contains(env.UserAgent(), "evalproject") {
		t.Errorf("Unexpected user agent: %s", env.UserAgent())
	}
	if env.RenderDigest() == "" {
		t.Error("Render digest should not be empty")
	}
	if env.NumCPU() < 1 {
		t.Errorf("Expected at least one CPU, got %d", env.NumCPU())
	}
	if env.DeviceMemoryGB() < 0 {
		t.Errorf("Device memory must degrade to 0, got %d", env.DeviceMemoryGB())
	}
}
