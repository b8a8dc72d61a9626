package account

import (
	"encoding/base64"
	"strings"
)

type SecretScheme string

const (
	// SchemeEncoded stores base64("username:password") and matches by equality.
	// It is what existing deployments hold and is kept for compatibility.
	SchemeEncoded SecretScheme = "encoded"
	// SchemeBcrypt stores a bcrypt hash of "username:password" and selects
	// the account by the username part of the credential.
	SchemeBcrypt SecretScheme = "bcrypt"
)

const basicPrefix = "Basic "

// ParseBasicAuth returns the decoded credential carried by a Basic
// Authorization header value.
func ParseBasicAuth(header string) (string, error) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", ErrMissingCredentials
	}
	encoded := strings.TrimSpace(header[len(basicPrefix):])
	if encoded == "" {
		return "", ErrMissingCredentials
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrMissingCredentials
	}
	return string(decoded), nil
}

func EncodeCredential(credential string) string {
	return base64.StdEncoding.EncodeToString([]byte(credential))
}

func BasicAuthHeader(username, password string) string {
	return basicPrefix + EncodeCredential(username+":"+password)
}
