package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeStringRe(t *testing.T) {
	valid := []string{"REF-001", "bet_123", "a.b.c", "ABC123"}
	for _, s := range valid {
		assert.True(t, safeStringRe.MatchString(s), "expected %q to be safe", s)
	}

	invalid := []string{"", "has space", "semi;colon", "<script>", "ref/001"}
	for _, s := range invalid {
		assert.False(t, safeStringRe.MatchString(s), "expected %q to be rejected", s)
	}
}

func TestSanitizeStruct_TrimsStrings(t *testing.T) {
	req := &StartMinesRequest{
		Stake:       100,
		MineCount:   3,
		ClientSeed:  "  my-seed  ",
		ReferenceID: " REF-001 ",
	}

	SanitizeStruct(req)

	assert.Equal(t, "my-seed", req.ClientSeed)
	assert.Equal(t, "REF-001", req.ReferenceID)
	assert.Equal(t, int64(100), req.Stake)
}

func TestSanitizeStruct_PointerFields(t *testing.T) {
	type withPtr struct {
		Name *string
	}
	s := " padded "
	v := &withPtr{Name: &s}

	SanitizeStruct(v)

	assert.Equal(t, "padded", *v.Name)
}

func TestSanitizeStruct_NonStructIsNoop(t *testing.T) {
	s := " unchanged "
	SanitizeStruct(&s)
	assert.Equal(t, " unchanged ", s)
}
