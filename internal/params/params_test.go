package params

import (
	"net/url"
	"slices"
	"strconv"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTwentyFiveItemsNoFilters(t *testing.T) {
	items := seq(25)
	p := ParsePagination(url.Values{})
	p.ComputeMeta(len(items))

	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	if !slices.Equal(p.Window, []int{1, 2, 3}) {
		t.Fatalf("unexpected window %v", p.Window)
	}

	sizes := []int{}
	for page := 1; page <= p.TotalPages; page++ {
		pp := ParsePagination(url.Values{"page": {strconv.Itoa(page)}})
		pp.ComputeMeta(len(items))
		sizes = append(sizes, len(Slice(items, pp)))
	}
	if !slices.Equal(sizes, []int{10, 10, 5}) {
		t.Fatalf("unexpected page sizes %v", sizes)
	}
}

func TestPagesReconstructCollection(t *testing.T) {
	for _, n := range []int{1, 9, 10, 11, 57, 100} {
		items := seq(n)
		p := Pagination{Limit: PageSize, prevTotal: -1}
		p.ComputeMeta(n)
		if want := (n + PageSize - 1) / PageSize; p.TotalPages != want {
			t.Fatalf("n=%d: pages %d want %d", n, p.TotalPages, want)
		}

		var joined []int
		for page := 1; page <= p.TotalPages; page++ {
			pp := Pagination{Limit: PageSize, Page: page, prevTotal: -1}
			pp.ComputeMeta(n)
			joined = append(joined, Slice(items, pp)...)
		}
		if !slices.Equal(joined, items) {
			t.Fatalf("n=%d: pages do not reconstruct the collection", n)
		}
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 0, []int{}},
		{1, 3, []int{1, 2, 3}},
		{2, 5, []int{1, 2, 3, 4, 5}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{3, 10, []int{1, 2, 3, 4, 5}},
		{4, 10, []int{2, 3, 4, 5, 6}},
		{8, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
		{7, 10, []int{5, 6, 7, 8, 9}},
	}
	for _, tc := range tests {
		got := PageWindow(tc.current, tc.total)
		if !slices.Equal(got, tc.want) {
			t.Errorf("PageWindow(%d, %d) = %v want %v", tc.current, tc.total, got, tc.want)
		}
	}
}

func TestComputeMetaResetsWhenTotalChanges(t *testing.T) {
	p := ParsePagination(url.Values{"page": {"3"}, "prev_total": {"40"}})
	p.ComputeMeta(12)
	if p.Page != 1 {
		t.Fatalf("expected reset to 1, got %d", p.Page)
	}

	same := ParsePagination(url.Values{"page": {"3"}, "prev_total": {"40"}})
	same.ComputeMeta(40)
	if same.Page != 3 || !same.HasPrev || !same.HasNext {
		t.Fatalf("unexpected %+v", same)
	}
}

func TestComputeMetaClampsPage(t *testing.T) {
	p := ParsePagination(url.Values{"page": {"9"}})
	p.ComputeMeta(25)
	if p.Page != 3 || p.HasNext {
		t.Fatalf("expected last page, got %+v", p)
	}
	empty := ParsePagination(url.Values{"page": {"2"}})
	empty.ComputeMeta(0)
	if empty.Page != 1 || empty.TotalPages != 0 || len(Slice([]int{}, empty)) != 0 {
		t.Fatalf("unexpected empty meta %+v", empty)
	}
}

func TestPageStateResetsOnTotalChange(t *testing.T) {
	s := NewPageState()
	s.Sync(25)
	s.Next()
	s.Next()
	if s.Page() != 3 || s.HasNext() {
		t.Fatalf("expected last page, got %d", s.Page())
	}

	s.Sync(25)
	if s.Page() != 3 {
		t.Fatal("same total must keep the page")
	}

	s.Sync(14)
	if s.Page() != 1 {
		t.Fatalf("changed total must reset, got %d", s.Page())
	}
	if s.GoTo(3) {
		t.Fatal("page 3 of 2 must be refused")
	}
	if !s.GoTo(2) || s.Page() != 2 {
		t.Fatal("jump to page 2 failed")
	}
	s.Prev()
	s.Prev()
	if s.Page() != 1 || s.HasPrev() {
		t.Fatalf("prev must stop at 1, got %d", s.Page())
	}
	if got := s.Pagination(); got.TotalPages != 2 || !slices.Equal(got.Window, []int{1, 2}) {
		t.Fatalf("unexpected pagination %+v", got)
	}
}

func TestComputeMetaFollowsPageState(t *testing.T) {
	for _, tc := range []struct {
		page, prev, total int
	}{
		{3, 40, 40},
		{3, 40, 12},
		{9, 25, 25},
		{2, 10, 0},
	} {
		s := restorePageState(tc.page, tc.prev, PageSize)
		s.Sync(tc.total)

		p := ParsePagination(url.Values{
			"page":       {strconv.Itoa(tc.page)},
			"prev_total": {strconv.Itoa(tc.prev)},
		})
		p.ComputeMeta(tc.total)

		want := s.Pagination()
		if p.Page != want.Page || p.TotalPages != want.TotalPages || p.Offset != want.Offset ||
			!slices.Equal(p.Window, want.Window) {
			t.Errorf("%+v: got %+v want %+v", tc, p, want)
		}
	}
}
