package ryu

// defaultReadChunkSize is the number of bytes FromReader reads per chunk
// before emitting it (spec §4.E).
const defaultReadChunkSize = 4096
