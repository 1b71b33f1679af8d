package pdmtest

import "errors"

var errOutOfRange = errors.New("pdmtest: page index out of range")
