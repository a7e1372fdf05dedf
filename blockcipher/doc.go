// Package blockcipher is a small demonstration of composing the aes
// core into modes of operation. It is intentionally minimal — no
// padding validation beyond PKCS#7, no AEAD, no streaming — since
// modes of operation are explicitly out of scope for the core itself
// (see the parent package's doc comment). Production callers should
// reach for a vetted, constant-time mode implementation; this package
// exists to show the shape of the "higher-level construct" the core's
// purpose statement describes.
package blockcipher
