package domain

// Page selects a window of a listing. From is an element index that is rounded
// down to the start of its page, so from=7&size=5 returns elements 5..9.
type Page struct {
	From int
	Size int
}

func (p Page) Offset() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.From / p.Size) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}
