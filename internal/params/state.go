package params

// PageState is the pager of a list view. Sync must be called with the filtered
// total every time the filtered collection is recomputed.
type PageState struct {
	page  int
	total int
	size  int
}

func NewPageState() *PageState {
	return &PageState{page: 1, size: PageSize}
}

// restorePageState rebuilds the pager a client left behind: the page it was on
// and the filtered total it saw. A negative total means the client saw none.
func restorePageState(page, total, size int) *PageState {
	if size <= 0 {
		size = PageSize
	}
	return &PageState{page: max(page, 1), total: total, size: size}
}

// Sync records the new filtered total; a changed total sends the view back to
// page 1. The page is then kept inside [1, TotalPages].
func (s *PageState) Sync(total int) {
	if total != s.total {
		s.page = 1
	}
	s.total = total
	if tp := s.TotalPages(); s.page > tp {
		s.page = max(tp, 1)
	}
}

func (s *PageState) Page() int { return s.page }

func (s *PageState) TotalPages() int {
	if s.total <= 0 {
		return 0
	}
	return (s.total + s.size - 1) / s.size
}

func (s *PageState) HasPrev() bool { return s.page > 1 }
func (s *PageState) HasNext() bool { return s.page < s.TotalPages() }

func (s *PageState) Next() {
	if s.HasNext() {
		s.page++
	}
}

func (s *PageState) Prev() {
	if s.HasPrev() {
		s.page--
	}
}

// GoTo jumps to page n; out-of-range requests are ignored.
func (s *PageState) GoTo(n int) bool {
	if n < 1 || n > max(s.TotalPages(), 1) {
		return false
	}
	s.page = n
	return true
}

func (s *PageState) Window() []int {
	return PageWindow(s.page, s.TotalPages())
}

// Pagination renders the state as the response meta.
func (s *PageState) Pagination() Pagination {
	return Pagination{
		Limit:      s.size,
		Offset:     (s.page - 1) * s.size,
		Page:       s.page,
		Total:      s.total,
		TotalPages: s.TotalPages(),
		HasNext:    s.HasNext(),
		HasPrev:    s.HasPrev(),
		Window:     s.Window(),
		prevTotal:  s.total,
	}
}
