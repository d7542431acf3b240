// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and admin key utilities.

# Admin Key

The portal has a single admin surface. Its key uses HMAC-SHA256 over a
fixed subject, derived from the deployment salt:

	adminKey := auth.GenerateAdminKey(salt)
	err := auth.ValidateAdminKey(adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the same salt always produces the same key. This allows
validation without storing the key anywhere.

Note this is deliberately not real authentication: any holder of the
derived key is "the admin". Voter identity is handled entirely
client-side by the votesec package.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving fraud detection on rating rows:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
