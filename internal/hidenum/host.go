package hidenum

// InterfaceToken identifies one present device interface for the duration of
// a single pass. Tokens are not valid across passes.
type InterfaceToken int

// QueryHandle is an opened metadata-query handle. It is owned by the pass
// that opened it and must be passed to Host.Close exactly once.
type QueryHandle uintptr

// PreparsedRef refers to a preparsed report-descriptor blob. It is owned by
// the capabilities querier and must be passed to Host.ReleasePreparsed
// exactly once, whether or not parsing succeeded.
type PreparsedRef uintptr

// Host is the OS boundary the pipeline runs against. All query methods
// report failure through their bool result; a false result drops or degrades
// the affected device without touching any other device.
//
// A Host value is scoped to one pass: NewHost acquires the class device set,
// Release tears it down.
type Host interface {
	// Interfaces lists every present interface of the HID device class.
	// A failed class lookup yields an empty slice, not an error.
	Interfaces() []InterfaceToken

	// DevicePath resolves a token to the device's addressable path.
	DevicePath(InterfaceToken) (string, bool)

	// Open acquires a metadata-only query handle for path. No read or write
	// access is requested and the handle is opened in shared read/write mode
	// so concurrent users of the device are not blocked.
	Open(path string) (QueryHandle, bool)

	// Close releases a handle obtained from Open.
	Close(QueryHandle)

	Manufacturer(QueryHandle) (string, bool)
	Product(QueryHandle) (string, bool)
	SerialNumber(QueryHandle) (string, bool)
	Attributes(QueryHandle) (Attributes, bool)

	// Preparsed fetches the device's preparsed report-descriptor blob.
	Preparsed(QueryHandle) (PreparsedRef, bool)

	// ReleasePreparsed frees a blob obtained from Preparsed.
	ReleasePreparsed(PreparsedRef)

	// Caps parses a blob into a capability descriptor.
	Caps(PreparsedRef) (Caps, bool)

	// Release tears down the class device set backing this pass.
	Release()
}

// NewHost returns the host backend for this platform.
func NewHost() Host {
	return newHost()
}
