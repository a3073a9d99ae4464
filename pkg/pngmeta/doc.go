// Package pngmeta rewrites the physical pixel density metadata (the pHYs
// chunk) embedded in PNG files without decoding pixel data and without a
// general-purpose image library.
//
// The rewrite is a single forward pass over the container's chunk stream: any
// existing pHYs chunks are dropped, one freshly synthesized pHYs is injected
// immediately before the first IDAT chunk, and every other chunk is copied
// byte-for-byte with its stored trailer. The result is committed back to
// storage through a caller-selected strategy; the atomic strategy tolerates
// source and destination being the same path.
//
// Typical use, once per generated page image:
//
//	if err := pngmeta.SetDPI("page01.png", 300, nil); err != nil {
//		log.Printf("page01.png: density patch failed: %v", err)
//	}
package pngmeta
