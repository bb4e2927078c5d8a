package btree

// Outcome tags the result of a structural operation. Expected misses are
// reported here instead of as errors.
type Outcome uint8

const (
	Inserted Outcome = iota + 1
	AlreadyPresent
	Updated
	Deleted
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case AlreadyPresent:
		return "already_present"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// OK reports whether the operation changed the tree.
func (o Outcome) OK() bool {
	return o == Inserted || o == Updated || o == Deleted
}
