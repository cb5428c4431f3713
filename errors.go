package variant

import (
	"github.com/brickingsoft/errors"
)

var (
	ErrBadAccess            = errors.Define("variant: invalid access on currently not active object")
	ErrUnknownAlternative   = errors.Define("variant: type is not part of the alternative list")
	ErrDuplicateAlternative = errors.Define("variant: duplicate type in alternative list")
	ErrNotNullable          = errors.Define("variant: not nullable")
	ErrSignatureMismatch    = errors.Define("variant: signatures differ")
)

const (
	errMetaWantKey   = "want"
	errMetaActiveKey = "active"
	errMetaTypeKey   = "type"
)

// IsBadAccess reports whether err came from a checked accessor hitting an
// inactive alternative.
func IsBadAccess(err error) bool {
	return errors.Is(err, ErrBadAccess)
}
