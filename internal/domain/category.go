package domain

// CategoryKind is a closed set of category semantics. It replaces ad-hoc
// string comparison against category "codes": the kind is resolved once when
// the taxonomy is loaded.
type CategoryKind string

const (
	CategoryKindStandard         CategoryKind = "standard"
	CategoryKindInternalTransfer CategoryKind = "internal_transfer"
)

// Category is one entry of the bookkeeping taxonomy.
type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Kind CategoryKind `json:"kind"`
}
