package memstore

// Unsupported names the ordered-set operations this package refuses to
// implement. The surrounding engine never calls them, and a wrong quiet
// implementation would be worse than a loud refusal, so each one fails with
// an UnsupportedError carrying the operation name and leaves the relation
// untouched. Keep additions to the supported surface on SortedStore; this
// interface exists so the refused remainder stays visible and does not
// silently grow.
type Unsupported[E any] interface {
	Ceiling(e E) (E, error)
	Floor(e E) (E, error)
	Higher(e E) (E, error)
	Lower(e E) (E, error)
	PollFirst() (E, error)
	PollLast() (E, error)
	SubView(from, to E) (*Set[E], error)
	Descending() (*Set[E], error)
	Comparator() (CompareFunc[E], error)
	InsertAll(entries []E) error
	ContainsAll(entries []E) (bool, error)
	RemoveAll(entries []E) error
	RetainAll(entries []E) error
	ToSlice() ([]E, error)
}

func (s *Set[E]) Ceiling(E) (E, error) {
	var zero E
	return zero, unsupported("Ceiling")
}

func (s *Set[E]) Floor(E) (E, error) {
	var zero E
	return zero, unsupported("Floor")
}

func (s *Set[E]) Higher(E) (E, error) {
	var zero E
	return zero, unsupported("Higher")
}

func (s *Set[E]) Lower(E) (E, error) {
	var zero E
	return zero, unsupported("Lower")
}

func (s *Set[E]) PollFirst() (E, error) {
	var zero E
	return zero, unsupported("PollFirst")
}

func (s *Set[E]) PollLast() (E, error) {
	var zero E
	return zero, unsupported("PollLast")
}

// SubView would be the two-sided bounded view; only Head and Tail exist.
func (s *Set[E]) SubView(E, E) (*Set[E], error) {
	return nil, unsupported("SubView")
}

// Descending would be a polymorphic descending view; use ReverseIterator or
// Backward for descending traversal.
func (s *Set[E]) Descending() (*Set[E], error) {
	return nil, unsupported("Descending")
}

func (s *Set[E]) Comparator() (CompareFunc[E], error) {
	return nil, unsupported("Comparator")
}

func (s *Set[E]) InsertAll([]E) error {
	return unsupported("InsertAll")
}

func (s *Set[E]) ContainsAll([]E) (bool, error) {
	return false, unsupported("ContainsAll")
}

func (s *Set[E]) RemoveAll([]E) error {
	return unsupported("RemoveAll")
}

func (s *Set[E]) RetainAll([]E) error {
	return unsupported("RetainAll")
}

func (s *Set[E]) ToSlice() ([]E, error) {
	return nil, unsupported("ToSlice")
}
