package meshfile

// Magic is the 4-byte file signature every indexed-mesh stream starts
// with, including its NUL terminator (spec §4.7, §6).
var Magic = [4]byte{'G', 'L', 'D', 0}

// Version is the current format version: high nibble major, low nibble
// minor (spec §4.7).
const Version = 0x10
