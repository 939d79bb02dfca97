package codec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/danielpatrickdp/evalfield/internal/field"
	"github.com/danielpatrickdp/evalfield/internal/preference"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrBadMessage = errors.New("malformed field message")

// #region encode
// Encode renders f as a protobuf Struct. Integers travel as decimal strings
// so that values beyond 2^53 survive; enumerations carry their whole catalog
// and its digest.
func Encode(f field.Field) (*structpb.Struct, error) {
	m, err := encodeMap(f)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func encodeMap(f field.Field) (map[string]any, error) {
	switch v := f.(type) {
	case *field.IntegerField:
		return map[string]any{
			keyKind: field.KindInteger.String(), keyPreference: v.PreferenceType().String(),
			keyValue: strconv.FormatInt(v.Value(), 10),
		}, nil
	case *field.RealField:
		return map[string]any{
			keyKind: field.KindReal.String(), keyPreference: v.PreferenceType().String(),
			keyValue: v.Value(),
		}, nil
	case *field.EnumerationField:
		list := v.Catalog()
		labels := make([]any, list.Size())
		for i, l := range list.Labels() {
			labels[i] = l
		}
		return map[string]any{
			keyKind: field.KindEnumeration.String(), keyPreference: v.PreferenceType().String(),
			keyValue: v.Value(), keyLabels: labels,
			keyAlgorithm: string(list.Algorithm()), keyDigest: list.DigestHex(),
		}, nil
	case *field.PairField:
		first, err := encodeMap(v.First())
		if err != nil {
			return nil, err
		}
		second, err := encodeMap(v.Second())
		if err != nil {
			return nil, err
		}
		return map[string]any{keyKind: field.KindPair.String(), keyFirst: first, keySecond: second}, nil
	case *field.MissingMV15:
		return map[string]any{keyKind: field.KindMissing.String(), keySemantics: string(attribute.MV15)}, nil
	case *field.MissingMV2:
		return map[string]any{keyKind: field.KindMissing.String(), keySemantics: string(attribute.MV2)}, nil
	case nil:
		return nil, field.ErrNilField
	}
	return nil, fmt.Errorf("%w: unsupported field %T", ErrBadMessage, f)
}

// #endregion encode

// #region decode
// Decode rebuilds a field from a Struct produced by Encode. Enumeration
// catalogs are verified against their transmitted digest.
func Decode(s *structpb.Struct) (field.Field, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: empty message", ErrBadMessage)
	}
	return decodeMap(s.AsMap())
}

func decodeMap(m map[string]any) (field.Field, error) {
	kind, _ := m[keyKind].(string)
	switch kind {
	case field.KindMissing.String():
		sem, _ := m[keySemantics].(string)
		switch attribute.MissingSemantics(sem) {
		case attribute.MV15, attribute.MV2:
			return attribute.MissingSemantics(sem).Value(), nil
		}
		return nil, fmt.Errorf("%w: missing semantics %q", ErrBadMessage, sem)
	case field.KindPair.String():
		first, err := decodeSimple(m[keyFirst])
		if err != nil {
			return nil, err
		}
		second, err := decodeSimple(m[keySecond])
		if err != nil {
			return nil, err
		}
		p, err := field.NewPair(first, second)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	s, err := decodeSimple(m)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func decodeSimple(raw any) (field.Simple, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrBadMessage, raw)
	}
	kind, _ := m[keyKind].(string)
	prefText, _ := m[keyPreference].(string)
	pref, err := preference.Parse(prefText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}

	switch kind {
	case field.KindInteger.String():
		text, _ := m[keyValue].(string)
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer value %q", ErrBadMessage, text)
		}
		f, err := field.NewInteger(v, pref)
		if err != nil {
			return nil, err
		}
		return f, nil
	case field.KindReal.String():
		v, ok := m[keyValue].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: real value %v", ErrBadMessage, m[keyValue])
		}
		f, err := field.NewReal(v, pref)
		if err != nil {
			return nil, err
		}
		return f, nil
	case field.KindEnumeration.String():
		list, err := decodeCatalog(m)
		if err != nil {
			return nil, err
		}
		label, _ := m[keyValue].(string)
		f, err := field.NewEnumeration(list, list.Index(label), pref)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: kind %q", ErrBadMessage, kind)
}

func decodeCatalog(m map[string]any) (*catalog.ElementList, error) {
	rawLabels, _ := m[keyLabels].([]any)
	labels := make([]string, len(rawLabels))
	for i, l := range rawLabels {
		s, ok := l.(string)
		if !ok {
			return nil, fmt.Errorf("%w: label %v", ErrBadMessage, l)
		}
		labels[i] = s
	}
	algText, _ := m[keyAlgorithm].(string)
	alg, err := catalog.ParseAlgorithm(algText)
	if err != nil {
		return nil, err
	}
	digestHex, _ := m[keyDigest].(string)
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return nil, fmt.Errorf("%w: digest %q", ErrBadMessage, digestHex)
	}
	return catalog.Restore(labels, alg, digest)
}

// #endregion decode
