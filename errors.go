package hud

import "errors"

// ErrInvalidFieldType is returned when a field carries a type value outside
// the known FieldType range. This indicates malformed input from the host
// and is never recovered silently.
var ErrInvalidFieldType = errors.New("hud: invalid field type")

// ErrZeroInterval is returned when a velocity sample has a zero time
// interval. The estimator refuses to divide by zero rather than propagate
// infinity into downstream attributes.
var ErrZeroInterval = errors.New("hud: velocity sample interval is zero")
