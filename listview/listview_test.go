package listview

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegexpView(Te *testing.T) {
	lines := []string{"#include \"a.itp\"", "; comment", "#define POSRES", "#include \"b.itp\""}
	v := NewRegexp(&lines, regexp.MustCompile(`^#include .+`))
	if v.Len() != 2 {
		Te.Errorf("expected 2 includes, got %d", v.Len())
	}
	want := []string{"#include \"a.itp\"", "#include \"b.itp\""}
	if diff := cmp.Diff(want, v.All()); diff != "" {
		Te.Errorf("includes mismatch (-want +got):\n%s", diff)
	}
	if !Contains(v, "#include \"b.itp\"") {
		Te.Error("Contains failed to find an existing include")
	}
	if Contains(v, "#define POSRES") {
		Te.Error("Contains found a line that the view filters out")
	}
}

func TestAppendGoesToTheEnd(Te *testing.T) {
	lines := []string{"#include \"a.itp\"", "[ atoms ]"}
	v := NewRegexp(&lines, regexp.MustCompile(`^#include .+`))
	v.Append("#include \"c.itp\"")
	want := []string{"#include \"a.itp\"", "[ atoms ]", "#include \"c.itp\""}
	if diff := cmp.Diff(want, lines); diff != "" {
		Te.Errorf("backing slice mismatch (-want +got):\n%s", diff)
	}
	//the view is live, changes by the owner show up too.
	lines = append(lines, "#include \"d.itp\"")
	if v.Len() != 3 {
		Te.Errorf("view not live: expected 3 includes, got %d", v.Len())
	}
}

func TestEachIndexes(Te *testing.T) {
	nums := []int{1, 2, 3, 4, 5, 6}
	v := New(&nums, func(i int) bool { return i%2 == 0 })
	var idx []int
	v.Each(func(i, _ int) bool {
		idx = append(idx, i)
		return len(idx) < 2
	})
	if diff := cmp.Diff([]int{1, 3}, idx); diff != "" {
		Te.Errorf("indexes mismatch (-want +got):\n%s", diff)
	}
}

func TestNilBacking(Te *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			Te.Error("expected a panic with nil backing slice")
		}
	}()
	New[int](nil, func(int) bool { return true })
}
