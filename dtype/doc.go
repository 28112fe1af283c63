// Package dtype provides the primitive scalar types of numeric leaves and a
// sampler for raw scalar values.
//
// The catalogue mirrors the primitive types a columnar nested-array library
// supports:
//
//	Kind        | Names
//	------------|--------------------------------------------------
//	bool        | bool
//	signed      | int8, int16, int32, int64
//	unsigned    | uint8, uint16, uint32, uint64
//	float       | float16, float32, float64
//	complex     | complex64, complex128
//	datetime    | datetime64[Y] … datetime64[as]
//	timedelta   | timedelta64[Y] … timedelta64[as]
//
// Values are stored as little-endian byte buffers of ItemSize bytes per
// element. Floating point and complex types may carry NaN; datetime and
// timedelta types may carry NaT (the minimum int64).
//
// # Key Functions
//
//   - [Supported]: all supported types, in catalogue order
//   - [Parse]: looks up a type by name
//   - [Sample]: draws n raw values of a type from a sampler
//   - [HasNaN], [HasNaT]: sentinel scans over raw buffers
//   - [FormatValue]: renders one element for display
package dtype
