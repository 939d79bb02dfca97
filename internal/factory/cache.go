package factory

import (
	"github.com/danielpatrickdp/evalfield/internal/attribute"
	"github.com/danielpatrickdp/evalfield/internal/catalog"
	"github.com/danielpatrickdp/evalfield/internal/field"
	"github.com/danielpatrickdp/evalfield/internal/preference"
)

// #region tiers
// tiers holds the persistent and volatile stores of one cache. Equal keys in
// the same tier always yield the same pointer.
type tiers[K comparable, V any] struct {
	persistent map[K]V
	volatile   map[K]V
}

func newTiers[K comparable, V any]() tiers[K, V] {
	return tiers[K, V]{persistent: make(map[K]V), volatile: make(map[K]V)}
}

func (t *tiers[K, V]) store(tier Tier) map[K]V {
	if tier == Persistent {
		return t.persistent
	}
	return t.volatile
}

func (t *tiers[K, V]) get(tier Tier, key K, build func() (V, error)) (V, error) {
	m := t.store(tier)
	if v, ok := m[key]; ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		return v, err
	}
	m[key] = v
	return v, nil
}

func (t *tiers[K, V]) clearVolatile() int {
	n := len(t.volatile)
	clear(t.volatile)
	return n
}

// #endregion tiers

// #region integer-cache
type integerKey struct {
	value int64
	pref  preference.Type
}

// IntegerCache deduplicates integer evaluations by (value, preference).
type IntegerCache struct {
	t tiers[integerKey, *field.IntegerField]
}

func (c *IntegerCache) Get(tier Tier, value int64, pref preference.Type) (*field.IntegerField, error) {
	return c.t.get(tier, integerKey{value, pref}, func() (*field.IntegerField, error) {
		return field.NewInteger(value, pref)
	})
}

func (c *IntegerCache) Persistent(value int64, pref preference.Type) (*field.IntegerField, error) {
	return c.Get(Persistent, value, pref)
}

func (c *IntegerCache) Volatile(value int64, pref preference.Type) (*field.IntegerField, error) {
	return c.Get(Volatile, value, pref)
}

func (c *IntegerCache) PersistentSize() int { return len(c.t.persistent) }
func (c *IntegerCache) VolatileSize() int   { return len(c.t.volatile) }

// ClearVolatile empties the volatile store and returns how many entries it held.
func (c *IntegerCache) ClearVolatile() int { return c.t.clearVolatile() }

// #endregion integer-cache

// #region real-cache
type realKey struct {
	value float64
	pref  preference.Type
}

// RealCache deduplicates real evaluations by (value, preference).
type RealCache struct {
	t tiers[realKey, *field.RealField]
}

func (c *RealCache) Get(tier Tier, value float64, pref preference.Type) (*field.RealField, error) {
	return c.t.get(tier, realKey{value, pref}, func() (*field.RealField, error) {
		return field.NewReal(value, pref)
	})
}

func (c *RealCache) Persistent(value float64, pref preference.Type) (*field.RealField, error) {
	return c.Get(Persistent, value, pref)
}

func (c *RealCache) Volatile(value float64, pref preference.Type) (*field.RealField, error) {
	return c.Get(Volatile, value, pref)
}

func (c *RealCache) PersistentSize() int { return len(c.t.persistent) }
func (c *RealCache) VolatileSize() int   { return len(c.t.volatile) }
func (c *RealCache) ClearVolatile() int  { return c.t.clearVolatile() }

// #endregion real-cache

// #region enumeration-cache
type enumerationKey struct {
	catalog string // algorithm and digest
	index   int
	pref    preference.Type
}

// EnumerationCache deduplicates enumeration evaluations by (catalog digest,
// index, preference). Entries sharing a key are kept in a bucket and matched
// by exact catalog content, so a digest collision never merges two catalogs.
type EnumerationCache struct {
	t tiers[enumerationKey, []*field.EnumerationField]
	// sizes count fields, not buckets
	persistentN int
	volatileN   int
}

func (c *EnumerationCache) Get(tier Tier, list *catalog.ElementList, index int, pref preference.Type) (*field.EnumerationField, error) {
	if list == nil {
		return nil, field.ErrNilCatalog
	}
	key := enumerationKey{catalog: list.Key(), index: index, pref: pref}
	m := c.t.store(tier)
	for _, f := range m[key] {
		if f.Catalog().IsEqualTo(list) {
			return f, nil
		}
	}
	f, err := field.NewEnumeration(list, index, pref)
	if err != nil {
		return nil, err
	}
	m[key] = append(m[key], f)
	if tier == Persistent {
		c.persistentN++
	} else {
		c.volatileN++
	}
	return f, nil
}

func (c *EnumerationCache) Persistent(list *catalog.ElementList, index int, pref preference.Type) (*field.EnumerationField, error) {
	return c.Get(Persistent, list, index, pref)
}

func (c *EnumerationCache) Volatile(list *catalog.ElementList, index int, pref preference.Type) (*field.EnumerationField, error) {
	return c.Get(Volatile, list, index, pref)
}

func (c *EnumerationCache) PersistentSize() int { return c.persistentN }
func (c *EnumerationCache) VolatileSize() int   { return c.volatileN }

func (c *EnumerationCache) ClearVolatile() int {
	n := c.volatileN
	c.t.clearVolatile()
	c.volatileN = 0
	return n
}

// #endregion enumeration-cache

// #region session
// Session is the cache context of one loading pass. It is not safe for
// concurrent use: every loader creates its own, so no cache is ever shared or locked.
type Session struct {
	Integers     *IntegerCache
	Reals        *RealCache
	Enumerations *EnumerationCache
}

// NewSession returns a Session with empty caches.
func NewSession() *Session {
	return &Session{
		Integers:     &IntegerCache{t: newTiers[integerKey, *field.IntegerField]()},
		Reals:        &RealCache{t: newTiers[realKey, *field.RealField]()},
		Enumerations: &EnumerationCache{t: newTiers[enumerationKey, []*field.EnumerationField]()},
	}
}

// Parse builds the evaluation for text through the given cache tier. Pair
// members are cached; the pair itself is not.
func (s *Session) Parse(text string, attr attribute.Attribute, tier Tier) (field.Field, error) {
	return parseWith(sessionBuilder{s: s, tier: tier}, text, attr)
}

// ClearVolatile empties every volatile store and returns the number of entries evicted.
func (s *Session) ClearVolatile() int {
	return s.Integers.ClearVolatile() + s.Reals.ClearVolatile() + s.Enumerations.ClearVolatile()
}

func (s *Session) VolatileSize() int {
	return s.Integers.VolatileSize() + s.Reals.VolatileSize() + s.Enumerations.VolatileSize()
}

func (s *Session) PersistentSize() int {
	return s.Integers.PersistentSize() + s.Reals.PersistentSize() + s.Enumerations.PersistentSize()
}

type sessionBuilder struct {
	s    *Session
	tier Tier
}

func (b sessionBuilder) integer(v int64, pref preference.Type) (*field.IntegerField, error) {
	return b.s.Integers.Get(b.tier, v, pref)
}

func (b sessionBuilder) real(v float64, pref preference.Type) (*field.RealField, error) {
	return b.s.Reals.Get(b.tier, v, pref)
}

func (b sessionBuilder) enumeration(list *catalog.ElementList, index int, pref preference.Type) (*field.EnumerationField, error) {
	return b.s.Enumerations.Get(b.tier, list, index, pref)
}

// #endregion session
