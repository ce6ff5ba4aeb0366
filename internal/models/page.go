package models

// Page is the pagination envelope attached to every listing response.
//
// Next is the offset for the following page (offset+limit, not checked
// against the actual result count). Limit reports the number of items
// actually returned, not the requested page size. Previous is offset-limit
// and is not clamped, so the first page reports a negative value. All three
// are long-standing contract quirks that clients rely on.
type Page struct {
	Next     int64 `json:"next"`
	Limit    int   `json:"limit"`
	Previous int64 `json:"previous"`
}

// NewPage builds the envelope for a page request that returned `returned`
// items.
func NewPage(offset, limit int64, returned int) Page {
	return Page{
		Next:     offset + limit,
		Limit:    returned,
		Previous: offset - limit,
	}
}
