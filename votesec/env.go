// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votesec

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Environment supplies the signals the fingerprint is derived from.
// Implementations must never fail: an unavailable signal degrades to
// zero or an empty string, which lowers entropy but stays correct.
type Environment interface {
	UserAgent() string
	Language() string
	ScreenSize() (width, height int)
	TimezoneOffsetMinutes() int
	RenderDigest() string
	NumCPU() int
	DeviceMemoryGB() int
}

// HostEnvironment reads fingerprint signals from the local machine.
type HostEnvironment struct{}

func (HostEnvironment) UserAgent() string {
	return "evalproject/1.0 (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
}

func (HostEnvironment) Language() string {
	for _, name := range []string{"LC_ALL", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ScreenSize is unavailable on a headless host.
func (HostEnvironment) ScreenSize() (int, int) {
	return 0, 0
}

// TimezoneOffsetMinutes returns minutes behind UTC, matching the web
// convention (UTC+2 is -120).
func (HostEnvironment) TimezoneOffsetMinutes() int {
	_, offsetSeconds := time.Now().Zone()
	return -offsetSeconds / 60
}

// RenderDigest stands in for the canvas digest of a browser: a hash of
// the rendering stack, stable on one machine and differing across
// toolchains and platforms.
func (HostEnvironment) RenderDigest() string {
	sum := sha256.Sum256([]byte("evalproject-render|" + runtime.Version() + "|" + runtime.GOOS + "|" + runtime.GOARCH))
	return hex.EncodeToString(sum[:])
}

func (HostEnvironment) NumCPU() int {
	return runtime.NumCPU()
}

// DeviceMemoryGB approximates total memory from /proc/meminfo.
// Returns 0 wherever that is unreadable (non-Linux hosts included).
func (HostEnvironment) DeviceMemoryGB() int {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return int(kb / (1024 * 1024))
	}
	return 0
}
