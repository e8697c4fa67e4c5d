package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
)

// Page holds offset pagination inputs from controllers or services.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps negative inputs: a negative skip reads from the start, a
// negative limit yields an empty page. Both clamps are load-bearing for the
// search contract, so they live here rather than in each caller.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	return p
}

// Default returns the standard first page.
func Default() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}
