package source

// FileID identifies the program a node or symbol belongs to.
type FileID uint32

// NoFileID marks nodes that were not read from any file (synthesized code).
const NoFileID FileID = 0
