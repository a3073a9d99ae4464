// Package writer exposes sinks for patched image emission.
package writer

// Sink persists an assembled image buffer to its destination. Implementations
// differ in crash safety: FileWriter never exposes a partial file, while
// DirectWriter can.
type Sink interface {
	WriteImage(buf []byte) error
}
