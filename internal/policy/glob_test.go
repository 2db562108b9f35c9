package policy

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*.cpp", "a.cpp", true},
		{"*.cpp", "src/deep/a.cpp", true},
		{"*.cpp", "a.cpp.orig", false},
		{"*.cpp", "a.CPP", false},
		{"third_party/*", "third_party/b.h", true},
		{"third_party/*", "third_party/x/y/z.h", true},
		{"third_party/*", "src/third_party/b.h", false},
		{"src/*.h", "src/a/b.h", true},
		{"?.c", "a.c", true},
		{"?.c", "ab.c", false},
		{"a?c", "a/c", true},
		{"[ab].c", "a.c", true},
		{"[ab].c", "c.c", false},
		{"[!ab].c", "c.c", true},
		{"[!ab].c", "a.c", false},
		{"[a-c]x", "bx", true},
		{"[a-c]x", "dx", false},
		{"[]]x", "]x", true},
		{"[^a]x", "^x", true},
		{"[^a]x", "bx", false},
		{"[abc", "[abc", true},
		{"[abc", "a", false},
		{"a.b", "a.b", true},
		{"a.b", "axb", false},
		{"(x)+", "(x)+", true},
		{`a\b`, `a\b`, true},
		{"*", ".github/workflows/ci.yml", true},
		{"", "", true},
		{"", "a", false},
	}

	for _, tt := range tests {
		if got := Match(tt.pattern, tt.name); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}
