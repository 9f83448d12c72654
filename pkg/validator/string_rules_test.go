package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/entityvalidator/pkg/validator"
)

func TestMinLength(t *testing.T) {
	t.Parallel()

	minLength := func(r *validator.Rule[field]) { r.MinLength(5) }

	t.Run("boundary", func(t *testing.T) {
		assert.True(t, check("abcde", minLength).Passed)

		out := check("abcd", minLength)
		assert.False(t, out.Passed)
		assert.Equal(t, "The value must be at least 5 characters long.", out.Message)
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		assert.True(t, check("héllo", minLength).Passed)
		assert.False(t, check("日本語", minLength).Passed)
	})

	t.Run("string pointers are dereferenced", func(t *testing.T) {
		assert.False(t, check(ptr("abc"), minLength).Passed)
		assert.True(t, check(ptr("abcdef"), minLength).Passed)
	})

	t.Run("absent and non-string values pass", func(t *testing.T) {
		for _, v := range []any{nil, (*string)(nil), 3, []string{"a"}} {
			assert.True(t, check(v, minLength).Passed, "value %#v", v)
		}
	})
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	maxLength := func(r *validator.Rule[field]) { r.MaxLength(3) }

	assert.True(t, check("abc", maxLength).Passed)
	assert.True(t, check("", maxLength).Passed)
	assert.True(t, check(nil, maxLength).Passed)
	assert.True(t, check(12345, maxLength).Passed)

	out := check("abcd", maxLength)
	assert.False(t, out.Passed)
	assert.Equal(t, "The value must not exceed 3 characters.", out.Message)
}

func TestIsNotEmpty(t *testing.T) {
	t.Parallel()

	notEmpty := func(r *validator.Rule[field]) { r.IsNotEmpty() }

	t.Run("non-blank strings pass", func(t *testing.T) {
		for _, v := range []any{"x", "  x  ", ptr("value")} {
			assert.True(t, check(v, notEmpty).Passed, "value %#v", v)
		}
	})

	t.Run("blank, absent and non-string values fail", func(t *testing.T) {
		for _, v := range []any{"", "   ", "\t\n", nil, (*string)(nil), 42} {
			out := check(v, notEmpty)
			assert.False(t, out.Passed, "value %#v", v)
			assert.Equal(t, "The value cannot be empty.", out.Message)
		}
	})
}

func TestIsSeoFriendly(t *testing.T) {
	t.Parallel()

	seo := func(r *validator.Rule[field]) { r.IsSeoFriendly() }

	for _, v := range []string{"my-first-post", "post-2024", "a", "-"} {
		assert.True(t, check(v, seo).Passed, "value %q", v)
	}

	for _, v := range []any{"My-Post", "my post", "my_post", "ümlaut", "", nil, 7} {
		out := check(v, seo)
		assert.False(t, out.Passed, "value %#v", v)
		assert.Equal(t, "The value is not SEO-friendly.", out.Message)
	}
}
