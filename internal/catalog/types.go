package catalog

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// #region errors
var (
	ErrEmpty            = errors.New("catalog has no elements")
	ErrDuplicateLabel   = errors.New("duplicate catalog label")
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
	ErrDigestMismatch   = errors.New("catalog digest does not match its labels")
)

// #endregion errors

// #region algorithm
// Algorithm names the digest function applied to a catalog's labels.
type Algorithm string

const (
	MD5    Algorithm = "MD5"
	SHA1   Algorithm = "SHA-1"
	SHA256 Algorithm = "SHA-256"
)

// DefaultAlgorithm is used by New.
const DefaultAlgorithm = MD5

// ParseAlgorithm accepts the canonical names case-insensitively, with or without the dash.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "MD5", "":
		return MD5, nil
	case "SHA1":
		return SHA1, nil
	case "SHA256":
		return SHA256, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}

// #endregion algorithm
