package domain

// Puzzle is a carved board together with the solution it was carved from.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Givens returns the mask of prefilled cells, fixed at carve time.
func (p *Puzzle) Givens() [Cells]bool {
	var given [Cells]bool
	for i, v := range p.Grid {
		given[i] = v != 0
	}
	return given
}

// HistoryEntry records one accepted edit so it can be undone. Entries are
// consumed strictly LIFO.
type HistoryEntry struct {
	Index    int
	Previous uint8
}

// TechniqueHint describes a logical next step for display purposes.
type TechniqueHint struct {
	Message string `json:"message,omitempty"`
	Index   int    `json:"index"`
	Value   uint8  `json:"value"`
}
