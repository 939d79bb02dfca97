package catalog

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/danielpatrickdp/evalfield/internal/ternary"
)

// #region element-list
// ElementList is the immutable, ordered domain of labels shared by the
// enumeration evaluations of one attribute. The digest is computed once at
// construction from the labels alone.
type ElementList struct {
	labels    []string
	index     map[string]int
	algorithm Algorithm
	digest    []byte
}

// New builds a catalog digested with DefaultAlgorithm.
func New(labels []string) (*ElementList, error) {
	return NewWithAlgorithm(labels, DefaultAlgorithm)
}

// NewWithAlgorithm builds a catalog digested with alg.
func NewWithAlgorithm(labels []string, alg Algorithm) (*ElementList, error) {
	if len(labels) == 0 {
		return nil, ErrEmpty
	}
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		index[l] = i
	}
	owned := slices.Clone(labels)
	digest, err := digestOf(owned, alg)
	if err != nil {
		return nil, err
	}
	return &ElementList{
		labels:    owned,
		index:     index,
		algorithm: alg,
		digest:    digest,
	}, nil
}

// Restore rebuilds a persisted catalog and checks that digest still matches its labels.
func Restore(labels []string, alg Algorithm, digest []byte) (*ElementList, error) {
	list, err := NewWithAlgorithm(labels, alg)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(list.digest, digest) {
		return nil, fmt.Errorf("%w: stored %x, computed %x", ErrDigestMismatch, digest, list.digest)
	}
	return list, nil
}

// #endregion element-list

// #region accessors
// Size returns the number of labels.
func (l *ElementList) Size() int {
	return len(l.labels)
}

// Element returns the label at index i.
func (l *ElementList) Element(i int) (string, error) {
	if i < 0 || i >= len(l.labels) {
		return "", fmt.Errorf("index %d out of range [0, %d)", i, len(l.labels))
	}
	return l.labels[i], nil
}

// Index returns the position of label, or -1 if the catalog does not contain it.
func (l *ElementList) Index(label string) int {
	i, ok := l.index[label]
	if !ok {
		return -1
	}
	return i
}

// Labels returns a copy of the labels in order.
func (l *ElementList) Labels() []string {
	return slices.Clone(l.labels)
}

func (l *ElementList) Algorithm() Algorithm {
	return l.algorithm
}

// Digest returns a copy of the digest bytes.
func (l *ElementList) Digest() []byte {
	return slices.Clone(l.digest)
}

func (l *ElementList) DigestHex() string {
	return hex.EncodeToString(l.digest)
}

// Key is a comparable form of (algorithm, digest), suitable as a map key.
func (l *ElementList) Key() string {
	return string(l.algorithm) + ":" + string(l.digest)
}

func (l *ElementList) String() string {
	return fmt.Sprintf("%v", l.labels)
}

// #endregion accessors

// #region equality
// HasEqualHash compares digests. Digests produced by different algorithms say
// nothing about each other, so that case is Uncomparable.
func (l *ElementList) HasEqualHash(other *ElementList) ternary.Value {
	if other == nil {
		panic("catalog: HasEqualHash called with nil catalog")
	}
	if l.algorithm != other.algorithm {
		return ternary.Uncomparable
	}
	return ternary.Of(bytes.Equal(l.digest, other.digest))
}

// IsEqualTo reports content equality. Differing digests of one algorithm
// settle it immediately; otherwise the labels are compared exactly.
func (l *ElementList) IsEqualTo(other *ElementList) bool {
	if other == nil {
		return false
	}
	if l == other {
		return true
	}
	if l.HasEqualHash(other) == ternary.False {
		return false
	}
	return slices.Equal(l.labels, other.labels)
}

// #endregion equality

// #region digest
// digestOf hashes each label length-prefixed so that ["ab","c"] and ["a","bc"] differ.
func digestOf(labels []string, alg Algorithm) ([]byte, error) {
	h, err := alg.newHash()
	if err != nil {
		return nil, err
	}
	var n [8]byte
	for _, l := range labels {
		binary.BigEndian.PutUint64(n[:], uint64(len(l)))
		h.Write(n[:])
		h.Write([]byte(l))
	}
	return h.Sum(nil), nil
}

// #endregion digest
