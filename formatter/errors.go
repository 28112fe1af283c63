package formatter

import "errors"

var errIllegalArgument = errors.New("formatter: illegal argument: nil")
