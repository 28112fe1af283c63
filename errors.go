package ragged

// ConfigurationError is an error type for invalid or contradictory generator
// options.
type ConfigurationError string

func (e ConfigurationError) Error() string {
	return string(e)
}

// ErrNoLeafKind is flagged if every leaf content type has been disabled.
// Every tree bottoms out in leaves, so no tree can be generated.
const ErrNoLeafKind = ConfigurationError("at least one leaf content type must be allowed")

// ErrLeafTooSmall is flagged if a leaf with a positive minimum size is
// requested, but the only allowed leaf content type is the empty one.
const ErrLeafTooSmall = ConfigurationError("no allowed leaf content type can hold the requested minimum size")

// ErrInvalidOption is flagged for out-of-range values in a configuration file.
const ErrInvalidOption = ConfigurationError("invalid generator option")

// ErrUnknownDType is flagged for a configuration file naming an unsupported
// primitive type.
const ErrUnknownDType = ConfigurationError("unknown primitive type in configuration")
