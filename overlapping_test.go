package daachorse

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindOverlapping(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		haystack string
		want     []Match
	}{
		{
			name:     "nested and overlapping matches all reported",
			patterns: []string{"bcd", "ab", "a"},
			haystack: "abcd",
			want:     []Match{{0, 1, 2}, {0, 2, 1}, {1, 4, 0}},
		},
		{
			name:     "unicode",
			patterns: []string{"t", "hi", "h", "this", "テス"},
			haystack: "this is a テスト",
			want:     []Match{{0, 1, 0}, {1, 2, 2}, {1, 3, 1}, {0, 4, 3}, {10, 12, 4}},
		},
		{
			name:     "suffix chain at one position ordered by start",
			patterns: []string{"abc", "bc", "c"},
			haystack: "abc",
			want:     []Match{{0, 3, 0}, {1, 3, 1}, {2, 3, 2}},
		},
		{
			name:     "invalid bytes fall outside the alphabet",
			patterns: []string{"\uFFFD", "a"},
			haystack: "\xff\uFFFDa\xff",
			want:     []Match{{1, 2, 0}, {2, 3, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pma := mustBuild(t, tt.patterns, MatchKindStandard)
			got, err := pma.FindOverlapping(tt.haystack)
			if err != nil {
				t.Fatalf("FindOverlapping(%q) failed: %v", tt.haystack, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindOverlapping(%q) = %v, want %v", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestFindOverlappingAsStrings(t *testing.T) {
	pma := mustBuild(t, []string{"bcd", "ab", "a"}, MatchKindStandard)

	got, err := pma.FindOverlappingAsStrings("abcd")
	if err != nil {
		t.Fatalf("FindOverlappingAsStrings failed: %v", err)
	}
	want := []string{"a", "ab", "bcd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindOverlappingAsStrings(%q) = %q, want %q", "abcd", got, want)
	}
}

func TestFindOverlappingNoSuffix(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		haystack string
		want     []Match
	}{
		{
			name:     "inherited suffix matches suppressed",
			patterns: []string{"bcd", "cd", "abc"},
			haystack: "abcd",
			want:     []Match{{0, 3, 2}, {1, 4, 0}},
		},
		{
			name:     "at most one match per position",
			patterns: []string{"abc", "bc", "c"},
			haystack: "abc",
			want:     []Match{{0, 3, 0}},
		},
		{
			name:     "position with only inherited output reports nothing",
			patterns: []string{"ab", "b"},
			haystack: "ab",
			want:     []Match{{0, 2, 0}},
		},
		{
			name:     "invalid byte never matches a replacement-rune pattern",
			patterns: []string{"\uFFFD"},
			haystack: "\xff\uFFFD",
			want:     []Match{{1, 2, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pma := mustBuild(t, tt.patterns, MatchKindStandard)
			got, err := pma.FindOverlappingNoSuffix(tt.haystack)
			if err != nil {
				t.Fatalf("FindOverlappingNoSuffix(%q) failed: %v", tt.haystack, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindOverlappingNoSuffix(%q) = %v, want %v", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestFindOverlappingNoSuffixAsStrings(t *testing.T) {
	pma := mustBuild(t, []string{"bcd", "cd", "abc"}, MatchKindStandard)

	got, err := pma.FindOverlappingNoSuffixAsStrings("abcd")
	if err != nil {
		t.Fatalf("FindOverlappingNoSuffixAsStrings failed: %v", err)
	}
	want := []string{"abc", "bcd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindOverlappingNoSuffixAsStrings(%q) = %q, want %q", "abcd", got, want)
	}
}

func TestOverlappingQueriesRequireStandardKind(t *testing.T) {
	patterns := []string{"t", "hi", "h", "this", "テス"}
	haystack := "this is a テスト"

	for _, kind := range []MatchKind{MatchKindLeftmostLongest, MatchKindLeftmostFirst} {
		t.Run(kind.String(), func(t *testing.T) {
			pma := mustBuild(t, patterns, kind)

			checks := []struct {
				name string
				call func() (int, error)
			}{
				{"FindOverlapping", func() (int, error) {
					ms, err := pma.FindOverlapping(haystack)
					return len(ms), err
				}},
				{"FindOverlappingAsStrings", func() (int, error) {
					ss, err := pma.FindOverlappingAsStrings(haystack)
					return len(ss), err
				}},
				{"FindOverlappingNoSuffix", func() (int, error) {
					ms, err := pma.FindOverlappingNoSuffix(haystack)
					return len(ms), err
				}},
				{"FindOverlappingNoSuffixAsStrings", func() (int, error) {
					ss, err := pma.FindOverlappingNoSuffixAsStrings(haystack)
					return len(ss), err
				}},
			}

			for _, c := range checks {
				n, err := c.call()
				if !errors.Is(err, ErrNonStandardMatchKind) {
					t.Errorf("%s error = %v, want ErrNonStandardMatchKind", c.name, err)
				}
				if n != 0 {
					t.Errorf("%s returned %d results alongside the error, want none", c.name, n)
				}
			}

			// The automaton stays usable for Find after a rejected call.
			if got := pma.Find(haystack); len(got) == 0 {
				t.Error("Find returned nothing after a rejected overlapping query")
			}
		})
	}
}

func TestErrNonStandardMatchKindMessage(t *testing.T) {
	if got := ErrNonStandardMatchKind.Error(); got != "match_kind must be STANDARD" {
		t.Errorf("error message = %q, want %q", got, "match_kind must be STANDARD")
	}
}
