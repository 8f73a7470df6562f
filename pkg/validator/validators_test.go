package validator_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func englishMessages(t *testing.T) validator.MessageFunc {
	t.Helper()
	tr, err := validator.DefaultTranslator(context.Background())
	require.NoError(t, err)
	return func(key string, args ...string) string {
		return tr.T("en", key, args...)
	}
}

func TestNotNullValidator(t *testing.T) {
	v := validator.NotNullValidator{}
	msg := englishMessages(t)
	assert.Equal(t, validator.KindNotNull, v.Kind())

	var nilPtr *int
	var nilSlice []string
	var nilFunc func()
	var nilChan chan int
	var nilMap map[string]int
	two := 2

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"nil pointer", nilPtr, false},
		{"pointer", &two, true},
		{"zero int", 0, true},
		{"empty string", "", true},
		{"nil slice is present", nilSlice, true},
		{"nil map is present", nilMap, true},
		{"nil func", nilFunc, false},
		{"nil chan", nilChan, false},
		{"func", func() {}, true},
		{"chan", make(chan int), true},
		{"pointer to nil func", &nilFunc, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := v.IsCorrect(tt.value, validator.NotNull())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)

			text, failed, err := v.DescribeError(msg, tt.value, validator.NotNull())
			require.NoError(t, err)
			assert.Equal(t, !tt.want, failed)
			if failed {
				assert.Equal(t, "is null but should be not null.", text)
			} else {
				assert.Empty(t, text)
			}
		})
	}

	t.Run("wrong kind", func(t *testing.T) {
		_, err := v.IsCorrect("x", validator.Email())
		assert.ErrorIs(t, err, validator.ErrUnsupportedConstraintKind)
	})
}

func TestSizeValidator_Boundaries(t *testing.T) {
	v := validator.SizeValidator{}
	c := validator.Size(1, 3)

	for size, want := range map[int]bool{0: false, 1: true, 2: true, 3: true, 4: false} {
		t.Run(fmt.Sprintf("text of size %d", size), func(t *testing.T) {
			ok, err := v.IsCorrect(strings.Repeat("x", size), c)
			require.NoError(t, err)
			assert.Equal(t, want, ok)
		})
		t.Run(fmt.Sprintf("slice of size %d", size), func(t *testing.T) {
			ok, err := v.IsCorrect(make([]int, size), c)
			require.NoError(t, err)
			assert.Equal(t, want, ok)
		})
	}
}

func TestSizeValidator_Sizes(t *testing.T) {
	v := validator.SizeValidator{}
	text := "zażółć"
	var nilMap map[string]int

	tests := []struct {
		name  string
		value any
		c     validator.Constraint
		want  bool
	}{
		{"runes not bytes", text, validator.MaxSize(6), true},
		{"pointer to text", &text, validator.Size(6, 6), true},
		{"array", [3]int{}, validator.Size(3, 3), true},
		{"map keys", map[string]int{"a": 1, "b": 2}, validator.MinSize(3), false},
		{"nil map is empty", nilMap, validator.MaxSize(0), true},
		{"unbounded", strings.Repeat("x", 1000), validator.MinSize(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := v.IsCorrect(tt.value, tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSizeValidator_Absent(t *testing.T) {
	v := validator.SizeValidator{}
	var name *string

	ok, err := v.IsCorrect(name, validator.Size(0, 5))
	require.NoError(t, err)
	assert.False(t, ok, "absent value fails even when zero size would pass")

	text, failed, err := v.DescribeError(englishMessages(t), name, validator.Size(0, 5))
	require.NoError(t, err)
	assert.False(t, failed, "absence has no size message")
	assert.Empty(t, text)
}

func TestSizeValidator_UnsupportedType(t *testing.T) {
	v := validator.SizeValidator{}
	for _, value := range []any{42, 3.14, true, struct{}{}} {
		_, err := v.IsCorrect(value, validator.MaxSize(1))
		assert.ErrorIs(t, err, validator.ErrUnsupportedValueType, "%T", value)
	}
}

func TestSizeValidator_DescribeError(t *testing.T) {
	v := validator.SizeValidator{}
	msg := englishMessages(t)

	tests := []struct {
		name  string
		value any
		c     validator.Constraint
		want  string
	}{
		{
			name:  "text min only",
			value: "ab",
			c:     validator.MinSize(3),
			want:  "has not proper size. It should be at least 3 chars long.",
		},
		{
			name:  "text max only",
			value: "abcdef",
			c:     validator.MaxSize(5),
			want:  "has not proper size. It should be no longer than 5 chars.",
		},
		{
			name:  "text both bounds",
			value: "abc",
			c:     validator.Size(2, 2),
			want:  "has not proper size. It should be at least 2 chars long. It should be no longer than 2 chars.",
		},
		{
			name:  "collection min only",
			value: []int{1},
			c:     validator.MinSize(2),
			want:  "has not proper size. It should contain at least 2 elements.",
		},
		{
			name:  "collection max only",
			value: map[string]bool{"a": true, "b": true},
			c:     validator.MaxSize(1),
			want:  "has not proper size. It should have no more than 1 elements.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, failed, err := v.DescribeError(msg, tt.value, tt.c)
			require.NoError(t, err)
			require.True(t, failed)
			assert.Equal(t, tt.want, text)
		})
	}

	t.Run("no message when correct", func(t *testing.T) {
		text, failed, err := v.DescribeError(msg, "abc", validator.MinSize(3))
		require.NoError(t, err)
		assert.False(t, failed)
		assert.Empty(t, text)
	})
}

func TestEmailValidator(t *testing.T) {
	v := validator.EmailValidator{}
	msg := englishMessages(t)

	tests := []struct {
		value string
		want  bool
	}{
		{"a@a.pl", true},
		{"john+tag.doe@mail.example.com", true},
		{"under_score@host-name.io", true},
		{"a@apl", false},
		{"a@a.p", false},
		{"@a.pl", false},
		{"a.@a.pl", false},
		{"a a@a.pl", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			ok, err := v.IsCorrect(tt.value, validator.Email())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	t.Run("message carries value", func(t *testing.T) {
		text, failed, err := v.DescribeError(msg, "a@apl", validator.Email())
		require.NoError(t, err)
		require.True(t, failed)
		assert.Equal(t, "with value 'a@apl' should be an email but it is not.", text)
	})

	t.Run("absent value renders as null", func(t *testing.T) {
		var email *string
		ok, err := v.IsCorrect(email, validator.Email())
		require.NoError(t, err)
		assert.False(t, ok)

		text, failed, err := v.DescribeError(msg, email, validator.Email())
		require.NoError(t, err)
		require.True(t, failed)
		assert.Equal(t, "with value 'null' should be an email but it is not.", text)
	})

	t.Run("non-text value", func(t *testing.T) {
		_, err := v.IsCorrect(42, validator.Email())
		assert.ErrorIs(t, err, validator.ErrUnsupportedValueType)
	})
}
