package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReferral(t *testing.T) {
	attr := Parse("ref_42", 7)
	assert.Equal(t, TypeReferral, attr.Type)
	assert.Equal(t, "42", attr.Value)

	id, ok := attr.ReferrerID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestParseSelfReferral(t *testing.T) {
	attr := Parse("ref_42", 42)
	assert.True(t, attr.None())
}

func TestParseBuyer(t *testing.T) {
	attr := Parse("buyer_fb_x7k2", 7)
	assert.Equal(t, TypeBuyer, attr.Type)
	assert.Equal(t, "buyer_fb_x7k2", attr.Value)
	assert.Empty(t, attr.ClickID)
}

func TestParseBuyerWithClickID(t *testing.T) {
	attr := Parse("buyer_fb_x7k2__abc123", 7)
	assert.Equal(t, TypeBuyer, attr.Type)
	assert.Equal(t, "buyer_fb_x7k2", attr.Value)
	assert.Equal(t, "abc123", attr.ClickID)
}

func TestParseMalformed(t *testing.T) {
	for _, param := range []string{
		"",
		"hello",
		"ref_",
		"ref_abc",
		"ref_-5",
		"buyer_",
		"buyer___x",
		"buyer___",
	} {
		attr := Parse(param, 7)
		assert.True(t, attr.None(), "param %q", param)
	}
}
