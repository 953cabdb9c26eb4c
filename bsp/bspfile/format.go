package bspfile

// Magic is the 4-byte file signature every BSP stream starts with,
// including its NUL terminator (spec §4.7, §6).
var Magic = [4]byte{'B', 'S', 'P', 0}

// Version is the current format version: high nibble major, low nibble
// minor (spec §4.7).
const Version = 0x10

// cFlag values: a single byte encoding which children follow a node's own
// data in the preorder stream (spec §4.7, §4.9). B = back present, F =
// front present; on any other byte Load treats the stream as malformed and
// returns a nil tree.
const (
	cFlagNone  = 0x00
	cFlagBack  = 0xB0
	cFlagFront = 0x0F
	cFlagBoth  = 0xBF
)
