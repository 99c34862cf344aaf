package addon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func locale(s string) *string {
	return &s
}

// TestRecordKeepsDeclarationOrder ensures keys come back in insertion order and
// a repeated key keeps its first position with the last value.
func TestRecordKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	r := NewRecord(
		Field{Key: "b", Value: String("1")},
		Field{Key: "a", Value: String("2")},
		Field{Key: "b", Value: String("3")},
	)

	require.Equal(t, []string{"b", "a"}, r.Keys())
	require.Equal(t, 2, r.Len())
	require.Equal(t, String("3"), r.Lookup("b"))
	require.True(t, r.Has("a"))
	require.False(t, r.Has("c"))
	require.Equal(t, Null(), r.Lookup("c"))
}

// TestLocalized covers the multilingual expansion rules.
func TestLocalized(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		record *Record
		want   []LocalizedValue
	}{
		{
			name:   "base only",
			record: NewRecord(Field{Key: "label", Value: String("Hello")}),
			want:   []LocalizedValue{{Text: "Hello"}},
		},
		{
			name: "variants follow declaration order",
			record: NewRecord(
				Field{Key: "label-ja", Value: String("こんにちは")},
				Field{Key: "label", Value: String("Hello")},
				Field{Key: "summary", Value: String("ignored")},
				Field{Key: "label-fr", Value: String("Bonjour")},
			),
			want: []LocalizedValue{
				{Text: "Hello"},
				{Locale: locale("ja"), Text: "こんにちは"},
				{Locale: locale("fr"), Text: "Bonjour"},
			},
		},
		{
			name: "missing base still emits an empty base entry",
			record: NewRecord(
				Field{Key: "label-en", Value: String("Hi")},
			),
			want: []LocalizedValue{
				{Text: ""},
				{Locale: locale("en"), Text: "Hi"},
			},
		},
		{
			name: "suffix is purely syntactic",
			record: NewRecord(
				Field{Key: "label", Value: String("Hello")},
				Field{Key: "label-not-a-locale", Value: String("x")},
				Field{Key: "label-", Value: String("y")},
				Field{Key: "labels", Value: String("z")},
			),
			want: []LocalizedValue{
				{Text: "Hello"},
				{Locale: locale("not-a-locale"), Text: "x"},
				{Locale: locale(""), Text: "y"},
			},
		},
		{
			name: "scalar variants are rendered as text",
			record: NewRecord(
				Field{Key: "label", Value: Number("42")},
				Field{Key: "label-de", Value: Bool(false)},
			),
			want: []LocalizedValue{
				{Text: "42"},
				{Locale: locale("de"), Text: "false"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.record.Localized("label")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestLocalizedRejectsCollections reports the offending key.
func TestLocalizedRejectsCollections(t *testing.T) {
	t.Parallel()

	r := NewRecord(
		Field{Key: "label", Value: String("Hello")},
		Field{Key: "label-fr", Value: Sequence(String("Bonjour"))},
	)

	_, err := r.Localized("label")
	require.ErrorIs(t, err, ErrInvalidField)
	require.ErrorContains(t, err, "label-fr")
}

// TestLocalizedIsDeterministic returns identical output for identical input.
func TestLocalizedIsDeterministic(t *testing.T) {
	t.Parallel()

	build := func() *Record {
		return NewRecord(
			Field{Key: "help-page-url", Value: String("https://example.com")},
			Field{Key: "help-page-url-ja", Value: String("https://example.com/ja")},
			Field{Key: "help-page-url-en", Value: String("https://example.com/en")},
		)
	}

	first, err := build().Localized("help-page-url")
	require.NoError(t, err)

	for range 10 {
		again, err := build().Localized("help-page-url")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
