package domain

// ChangeKind distinguishes writes from deletions in a file change notification.
type ChangeKind uint8

const (
	// ChangeWrite means the file was created or modified.
	ChangeWrite ChangeKind = iota
	// ChangeRemove means the file was deleted.
	ChangeRemove
)

// String returns the lowercase name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeWrite:
		return "write"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// FileChange is one entry of a delta reported by the host build tool.
type FileChange struct {
	Path string
	Kind ChangeKind
	// Text is the new content. Ignored unless HasText is set.
	Text string
	// HasText is false when the new content must be read from storage.
	HasText bool
}

// WriteChange reports new content for path.
func WriteChange(path, text string) FileChange {
	return FileChange{Path: path, Kind: ChangeWrite, Text: text, HasText: true}
}

// TouchChange reports that path changed on disk and must be re-read.
func TouchChange(path string) FileChange {
	return FileChange{Path: path, Kind: ChangeWrite}
}

// RemoveChange reports that path was deleted.
func RemoveChange(path string) FileChange {
	return FileChange{Path: path, Kind: ChangeRemove}
}
