package hostid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeIORegistry counts entry releases.
type fakeIORegistry struct {
	root     ioEntry
	props    map[string]string
	released map[ioEntry]int
	asked    []string
}

func newFakeIORegistry(root ioEntry, props map[string]string) *fakeIORegistry {
	return &fakeIORegistry{root: root, props: props, released: make(map[ioEntry]int)}
}

func (r *fakeIORegistry) RootEntry() ioEntry {
	return r.root
}

func (r *fakeIORegistry) StringProperty(entry ioEntry, key string) (string, bool) {
	r.asked = append(r.asked, key)

	if entry != r.root {
		return "", false
	}

	v, ok := r.props[key]

	return v, ok
}

func (r *fakeIORegistry) Release(entry ioEntry) {
	r.released[entry]++
}

func TestIORegistryResolverFound(t *testing.T) {
	reg := newFakeIORegistry(42, map[string]string{
		"IOPlatformUUID": "8D6A3B5E-1C2F-4A7B-9E0D-3F5C6B7A8D9E",
	})
	r := &ioRegistryResolver{registry: reg}

	assert.Equal(t, Found("8D6A3B5E-1C2F-4A7B-9E0D-3F5C6B7A8D9E"), r.Resolve())
	assert.Equal(t, []string{"IOPlatformUUID"}, reg.asked)
	assert.Equal(t, 1, reg.released[42])
}

func TestIORegistryResolverPropertyMissing(t *testing.T) {
	reg := newFakeIORegistry(42, map[string]string{})
	r := &ioRegistryResolver{registry: reg}

	assert.Equal(t, Absent, r.Resolve())
	assert.Equal(t, 1, reg.released[42], "root entry must be released exactly once")
}

func TestIORegistryResolverEmptyProperty(t *testing.T) {
	reg := newFakeIORegistry(7, map[string]string{"IOPlatformUUID": ""})
	r := &ioRegistryResolver{registry: reg}

	assert.Equal(t, Absent, r.Resolve())
	assert.Equal(t, 1, reg.released[7])
}

func TestIORegistryResolverNullRoot(t *testing.T) {
	reg := newFakeIORegistry(0, map[string]string{"IOPlatformUUID": "unused"})
	r := &ioRegistryResolver{registry: reg}

	assert.Equal(t, Absent, r.Resolve())
	assert.Empty(t, reg.asked, "no property is read without a root entry")
	assert.Empty(t, reg.released, "a null entry is never released")
}

func TestIORegistryResolverRepeatedCallsBalanceReleases(t *testing.T) {
	reg := newFakeIORegistry(42, map[string]string{"IOPlatformUUID": "uuid"})
	r := &ioRegistryResolver{registry: reg}

	for i := 0; i < 1000; i++ {
		assert.Equal(t, Found("uuid"), r.Resolve())
	}
	assert.Equal(t, 1000, reg.released[42])
}
