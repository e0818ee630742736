package domain

// SingletonID is the fixed row id of the site settings and about-me records.
const SingletonID int64 = 1

// Record is a create or update payload that maps onto table columns.
type Record interface {
	Assignments() Assignments
}

// nullable returns nil for a nil pointer and the pointed-to value otherwise,
// so the driver writes NULL rather than a typed nil.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
