// Package blockdev wraps a raw communication channel into block-addressed
// read/write operations with a fixed block size.
//
// The package deliberately knows nothing about USB or UF2: the caller
// supplies the channel (an opened raw device node, a SCSI passthrough, an
// in-memory buffer for tests) and the Device turns block indices into byte
// offsets. The channel is passed to New explicitly, so the adapter is built
// from a capability the caller already owns.
package blockdev
