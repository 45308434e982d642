package domain

// ListParams carries limit/offset values from the HTTP layer to the repo
// layer. Offset is zero-based. Limit is capped at 100 by NewListParams.
type ListParams struct {
	// Limit is the maximum number of items to return.
	Limit int
	// Offset is the number of items to skip from the newest end.
	Offset int
}

// NewListParams builds a ListParams from raw HTTP query values.
// Out-of-range values fall back to sane defaults (limit=10, offset=0).
// The limit is capped at 100 to prevent runaway queries.
func NewListParams(limit, offset int) ListParams {
	p := ListParams{Limit: 10, Offset: 0}
	if limit >= 1 {
		p.Limit = limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	if offset >= 1 {
		p.Offset = offset
	}
	return p
}
