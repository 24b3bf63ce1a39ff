package resource

import "encoding/json"

// Page is one page of a list result, normalized regardless of whether the
// upstream returned a bare array or an already-paginated object.
//
// Total mirrors the upstream's observed behavior: when the upstream returns
// a bare array, Total is the count of the current page, not a true overall
// count. Pagination UIs built on it will undercount result sets larger than
// one page; kept as-is until the upstream contract says otherwise.
type Page[T any] struct {
	Items []T  `json:"items"`
	Total int  `json:"total"`
	Page  int  `json:"page"`
	Limit int  `json:"limit"`
	Demo  bool `json:"demo,omitempty"` // set when served from the demo fallback
}

// decodePage normalizes a raw list response body into a Page
func decodePage[T any](raw json.RawMessage, page, limit int) (Page[T], error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return Page[T]{Items: items, Total: len(items), Page: page, Limit: limit}, nil
	}

	var paged struct {
		Items []T `json:"items"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(raw, &paged); err != nil {
		return Page[T]{}, err
	}
	return Page[T]{Items: paged.Items, Total: paged.Total, Page: page, Limit: limit}, nil
}
