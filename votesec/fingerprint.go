// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votesec

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// fingerprintLength is how many characters of the encoded signal string
// make up the fingerprint fragment.
const fingerprintLength = 32

// fingerprintSeparator joins the signal fields. None of the fields is
// expected to contain it.
const fingerprintSeparator = "|"

// Fingerprint derives the identity fragment from environment signals:
// the fields are joined in fixed order, base64-encoded, and truncated.
// Deterministic for a given Environment, never fails.
//
// Truncating to 32 base64 characters keeps only the first 24 bytes of
// the joined string, so with a typical long user agent the later
// signals never reach the output. The entropy loss is accepted; the
// fragment is combined with a random session token and only has to be
// semi-stable, not unique.
func Fingerprint(env Environment) string {
	width, height := env.ScreenSize()

	joined := strings.Join([]string{
		env.UserAgent(),
		env.Language(),
		strconv.Itoa(width) + "x" + strconv.Itoa(height),
		strconv.Itoa(env.TimezoneOffsetMinutes()),
		env.RenderDigest(),
		strconv.Itoa(env.NumCPU()),
		strconv.Itoa(env.DeviceMemoryGB()),
	}, fingerprintSeparator)

	encoded := base64.StdEncoding.EncodeToString([]byte(joined))
	if len(encoded) > fingerprintLength {
		encoded = encoded[:fingerprintLength]
	}
	return encoded
}
