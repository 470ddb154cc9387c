package pkguid

// Generator kinds accepted by NewStringID.
const (
	KindUUID      = "uuid"
	KindSnowflake = "snowflake"
)

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}
