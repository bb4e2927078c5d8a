package server

// InsertRequest is the body of POST /v1/records.
type InsertRequest struct {
	Key   *int64 `json:"key" validate:"required"`
	Value string `json:"value"`
}

// KeyRequest addresses one record by path.
type KeyRequest struct {
	Key int64 `uri:"key" json:"-"`
}

// UpdateRequest is PUT /v1/records/:key.
type UpdateRequest struct {
	Key   int64   `uri:"key" json:"-"`
	Value *string `json:"value" validate:"required"`
}

// ListRequest takes no parameters.
type ListRequest struct{}

// Record is one key/value pair on the wire.
type Record struct {
	Key   int64  `json:"key"`
	Value string `json:"value"`
}

// OutcomeResponse reports what a structural operation did.
type OutcomeResponse struct {
	Key     int64  `json:"key"`
	Outcome string `json:"outcome"`
}
