package pagination

// Entry is one slot of a page-number window: either a page number or
// an ellipsis standing in for a collapsed gap.
type Entry struct {
	Page     int
	Ellipsis bool
}

func page(n int) Entry {
	return Entry{Page: n}
}

var ellipsis = Entry{Ellipsis: true}

// Window computes the page numbers worth showing for the current page:
// always the first and last page, every page within two of the current
// one, and a single ellipsis per collapsed gap. Out-of-range inputs
// are clamped, so the result always contains the requested page's
// nearest valid neighbor.
func Window(current, pageSize, total int) []Entry {
	if pageSize < 1 {
		pageSize = 1
	}
	last := (total + pageSize - 1) / pageSize
	if last < 1 {
		last = 1
	}
	if current < 1 {
		current = 1
	}
	if current > last {
		current = last
	}

	var window []Entry
	prev := 0
	for p := 1; p <= last; p++ {
		if p != 1 && p != last && (p < current-2 || p > current+2) {
			continue
		}
		if prev != 0 && p-prev > 1 {
			window = append(window, ellipsis)
		}
		window = append(window, page(p))
		prev = p
	}
	return window
}

// PageCount is the number of pages needed for total items.
func PageCount(pageSize, total int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	last := (total + pageSize - 1) / pageSize
	if last < 1 {
		last = 1
	}
	return last
}
