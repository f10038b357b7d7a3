package solver

import (
	"testing"
)

func TestCompileGreenOverridesExcluded(t *testing.T) {
	c := Compile(Constraints{
		Excluded: []rune{'s', 'q'},
		Green:    map[int]rune{0: 's'},
	})

	sBit := uint32(1) << ('s' - 'a')
	qBit := uint32(1) << ('q' - 'a')
	if c.ExcludedMask()&sBit != 0 {
		t.Error("green letter 's' must not remain excluded")
	}
	if c.ExcludedMask()&qBit == 0 {
		t.Error("'q' should still be excluded")
	}
	if c.RequiredMask()&sBit == 0 {
		t.Error("green letter 's' should be required")
	}
}

func TestCompileDropsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		in   Constraints
		want Compiled
	}{
		{
			name: "out of range green positions",
			in:   Constraints{Green: map[int]rune{-1: 'a', 5: 'b', 99: 'c'}},
			want: Compiled{},
		},
		{
			name: "non-alphabetic letters",
			in: Constraints{
				Excluded: []rune{'1', '-'},
				Green:    map[int]rune{0: '!'},
				Yellow:   map[rune]uint8{'?': 0b11},
			},
			want: Compiled{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.in)
			if got.ExcludedMask() != tt.want.ExcludedMask() ||
				got.RequiredMask() != tt.want.RequiredMask() ||
				len(got.greens) != len(tt.want.greens) ||
				len(got.yellows) != len(tt.want.yellows) {
				t.Errorf("Compile(%+v) = %+v, want empty constraint", tt.in, got)
			}
		})
	}
}

func TestCompileFoldsCase(t *testing.T) {
	a := Compile(Constraints{
		Excluded: []rune{'Q'},
		Green:    map[int]rune{0: 'S'},
		Yellow:   map[rune]uint8{'A': 0b1},
	})
	b := Compile(Constraints{
		Excluded: []rune{'q'},
		Green:    map[int]rune{0: 's'},
		Yellow:   map[rune]uint8{'a': 0b1},
	})
	if a.Key() != b.Key() {
		t.Errorf("case-folded constraints should compile identically: %+v vs %+v", a.Key(), b.Key())
	}
}

func TestCompileTruncatesForbiddenMask(t *testing.T) {
	c := Compile(Constraints{Yellow: map[rune]uint8{'a': 0xff}})
	if got := c.yellows[0].forbidden; got != positionBits {
		t.Errorf("forbidden mask = %08b, want %08b", got, positionBits)
	}
}

func TestKeyOrderInvariance(t *testing.T) {
	perms := [][]rune{
		{'q', 'x', 'z'},
		{'z', 'q', 'x'},
		{'x', 'z', 'q'},
	}

	var first Key
	for i, p := range perms {
		k := Compile(Constraints{
			Excluded: p,
			Green:    map[int]rune{0: 's', 4: 'e'},
			Yellow:   map[rune]uint8{'a': 0b11, 'n': 0},
		}).Key()
		if i == 0 {
			first = k
			continue
		}
		if k != first {
			t.Errorf("permutation %d produced key %+v, want %+v", i, k, first)
		}
	}
}

func TestKeyDistinguishesConstraints(t *testing.T) {
	base := Compile(Constraints{Green: map[int]rune{0: 's'}}).Key()

	tests := []struct {
		name string
		in   Constraints
	}{
		{"different green position", Constraints{Green: map[int]rune{1: 's'}}},
		{"different green letter", Constraints{Green: map[int]rune{0: 't'}}},
		{"extra excluded letter", Constraints{Excluded: []rune{'q'}, Green: map[int]rune{0: 's'}}},
		{"extra yellow letter", Constraints{Green: map[int]rune{0: 's'}, Yellow: map[rune]uint8{'a': 0b1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if k := Compile(tt.in).Key(); k == base {
				t.Errorf("key %+v should differ from base", k)
			}
		})
	}
}

func TestRequiredOnly(t *testing.T) {
	c := Compile(RequiredOnly('a', 'e'))
	want := uint32(1<<('a'-'a') | 1<<('e'-'a'))
	if c.RequiredMask() != want {
		t.Errorf("RequiredMask() = %026b, want %026b", c.RequiredMask(), want)
	}
	for _, y := range c.yellows {
		if y.forbidden != 0 {
			t.Errorf("letter %c carries forbidden mask %08b, want none", 'a'+y.letter, y.forbidden)
		}
	}
}
