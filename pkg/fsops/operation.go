package fsops

// OperationType identifies the kind of filesystem mutation an
// Operation performs.
type OperationType string

const (
	// OperationCreateDir creates a directory (and parents) at Target
	OperationCreateDir OperationType = "create_dir"

	// OperationWriteFile writes Content to Target
	OperationWriteFile OperationType = "write_file"

	// OperationCopyFile copies Source to Target verbatim
	OperationCopyFile OperationType = "copy_file"
)

// Operation describes one filesystem mutation. Paths are absolute.
type Operation struct {
	// Type is the operation kind
	Type OperationType

	// Source is the file to copy from, copy operations only
	Source string

	// Target is the path the operation mutates
	Target string

	// Content is the data to write, write operations only
	Content []byte
}

// CreateDir returns a create-directory operation for the given path.
func CreateDir(path string) Operation {
	return Operation{Type: OperationCreateDir, Target: path}
}

// WriteFile returns a write-file operation for the given path and content.
func WriteFile(path string, content []byte) Operation {
	return Operation{Type: OperationWriteFile, Target: path, Content: content}
}

// CopyFile returns a copy-file operation from source to target.
func CopyFile(source, target string) Operation {
	return Operation{Type: OperationCopyFile, Source: source, Target: target}
}
