package core

// Entity is a unique integer handle for a UI entity.
// Zero is never allocated and acts as the invalid sentinel.
type Entity uint64

// InvalidEntity is the zero handle, returned by lookups that find nothing.
const InvalidEntity Entity = 0
