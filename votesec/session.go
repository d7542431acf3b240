// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votesec

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// newSessionToken returns "{epoch-millis}_{random-base36}". The random
// fragment comes from crypto/rand; if that is somehow unavailable the
// token degrades to the process clock, which is still unique enough for
// a per-installation identifier.
func newSessionToken(now time.Time) string {
	var fragment string

	b := make([]byte, 8)
	if _, err := rand.Read(b); err == nil {
		fragment = strconv.FormatUint(binary.BigEndian.Uint64(b), 36)
	} else {
		fragment = strconv.FormatInt(now.UnixNano(), 36)
	}

	return strconv.FormatInt(now.UnixMilli(), 10) + "_" + fragment
}
