// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// AdminKeyID is the fixed subject the portal-wide admin key is derived from.
// There is a single admin surface, so one derived key per deployment salt.
const AdminKeyID = "evalproject-admin"

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateAdminKey creates the HMAC-based admin key for the portal
// This is deterministic and verifiable
func GenerateAdminKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(AdminKeyID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid
func ValidateAdminKey(adminKey, salt string) error {
	expected := GenerateAdminKey(salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
