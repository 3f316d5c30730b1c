package utils

import (
	"net/url"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateRequestID returns a short URL-safe id for request correlation.
func GenerateRequestID() string {
	id, err := gonanoid.Generate(idAlphabet, 16)
	if err != nil {
		return uuid.NewString()
	}
	return id
}

// ParseID parses a path id. Anything that is not a UUID reports false.
func ParseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// PathValue undoes percent-encoding left in a raw path parameter.
func PathValue(raw string) string {
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}
