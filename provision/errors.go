package provision

import "errors"

var errNotFound = errors.New("not found")
