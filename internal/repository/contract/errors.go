package contract

import "errors"

// ErrDuplicateKey is returned by Create, CreateMany and Rename when the write
// would break a unique constraint (folder or tag name).
var ErrDuplicateKey = errors.New("duplicate key")
