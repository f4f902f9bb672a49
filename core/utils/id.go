package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short URL-safe identifier.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateShortSuffix returns a short random suffix used when synthesizing
// identifiers for external events that arrive without a UID.
func GenerateShortSuffix() string {
	id, err := gonanoid.Generate(idAlphabet, 9)
	if err != nil {
		return "0"
	}
	return id
}
