package layout

// Store is the ordered, index-addressed collection of layout records. It is
// owned by a single engine and is not safe for concurrent mutation.
type Store struct {
	records []Layout
}

// NewStore returns a store seeded with records. The store takes ownership of
// the slice.
func NewStore(records []Layout) *Store {
	return &Store{records: records}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// At returns a pointer to the record at index for in-place mutation.
func (s *Store) At(index int) (*Layout, bool) {
	if index < 0 || index >= len(s.records) {
		return nil, false
	}
	return &s.records[index], true
}

// Records returns the live backing slice.
func (s *Store) Records() []Layout {
	return s.records
}

// put writes geometry for index, appending when index is past the end.
// The override flag of an existing record is left untouched.
func (s *Store) put(index int, x, y, width, height float64, itemType string) {
	if index >= len(s.records) {
		s.records = append(s.records, Layout{
			X:      x,
			Y:      y,
			Width:  width,
			Height: height,
			Type:   itemType,
		})
		return
	}

	rec := &s.records[index]
	rec.X = x
	rec.Y = y
	rec.Width = width
	rec.Height = height
	rec.Type = itemType
}

// truncate drops every record at or past n.
func (s *Store) truncate(n int) {
	if n < len(s.records) {
		clear(s.records[n:])
		s.records = s.records[:n]
	}
}
