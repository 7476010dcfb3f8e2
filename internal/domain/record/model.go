package record

// Record is the single stored entity: a generated identifier and a name.
// ID is nil until the record has been persisted for the first time.
type Record struct {
	ID   *int64 `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"notblank"`
}

// New returns an unsaved record with the given name.
func New(name string) Record {
	return Record{Name: name}
}

// HasID reports whether the record already carries a store-assigned id.
func (r Record) HasID() bool {
	return r.ID != nil
}

// WithID returns a copy of r pointing at id.
func (r Record) WithID(id int64) Record {
	r.ID = &id
	return r
}

// IDValue returns the id or 0 for an unsaved record.
func (r Record) IDValue() int64 {
	if r.ID == nil {
		return 0
	}
	return *r.ID
}
