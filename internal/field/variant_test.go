package field

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestVariantsLookup(t *testing.T) {
	variants := NewVariants(
		Variant[uint8]{Name: "A", Value: 1},
		Variant[uint8]{Name: "B", Value: 2},
	)
	assert.Equal(t, 2, variants.Len())

	v, ok := variants.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "A", v.Name)

	v, ok = variants.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, "B", v.Name)

	_, ok = variants.Lookup(5)
	assert.False(t, ok)
}

func TestVariantsAllIsCopy(t *testing.T) {
	variants := NewVariants(Variant[uint32]{Name: "X", Value: 0})
	all := variants.All()
	all[0].Name = "changed"

	v, ok := variants.Lookup(0)
	assert.True(t, ok)
	assert.Equal(t, "X", v.Name)
}

func TestEmptyVariants(t *testing.T) {
	var variants Variants[uint16]
	_, ok := variants.Lookup(0)
	assert.False(t, ok)
	assert.Equal(t, 0, variants.Len())
}

func TestInvalidVariantsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"duplicate name", func() {
			NewVariants(Variant[uint8]{Name: "A", Value: 1}, Variant[uint8]{Name: "A", Value: 2})
		}},
		{"duplicate value", func() {
			NewVariants(Variant[uint8]{Name: "A", Value: 1}, Variant[uint8]{Name: "B", Value: 1})
		}},
		{"empty name", func() {
			NewVariants(Variant[uint8]{Value: 1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, panics(tt.fn))
		})
	}
}
