package btree

const (
	// DefaultMaxKeys is the number of keys a node holds before it splits.
	DefaultMaxKeys = 10

	// DefaultRecordsPerBlock is the number of records packed into one
	// simulated storage block when reporting BlocksCount.
	DefaultRecordsPerBlock = 4

	// minMaxKeys is the smallest usable MaxKeys. A single key per node
	// would need special handling on split.
	minMaxKeys = 2
)

// nodeKind tags the two node variants.
type nodeKind uint8

const (
	indexKind nodeKind = iota
	recordKind
)

func (k nodeKind) String() string {
	switch k {
	case indexKind:
		return "index"
	case recordKind:
		return "record"
	default:
		return "unknown"
	}
}
