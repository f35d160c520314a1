package types

import "fmt"

// OperationType defines the type of file system operation
type OperationType string

const (
	// OperationCreateDir creates a directory
	OperationCreateDir OperationType = "mkdir"

	// OperationWriteFile writes content to a file
	OperationWriteFile OperationType = "write"
)

// OperationStatus defines the state of an operation
type OperationStatus string

const (
	// StatusReady means the operation is ready to be executed
	StatusReady OperationStatus = "ready"
	// StatusSkipped means the target already exists and force is off
	StatusSkipped OperationStatus = "skipped"
	// StatusDone means the operation was executed
	StatusDone OperationStatus = "done"
	// StatusError means the operation resulted in an error
	StatusError OperationStatus = "error"
)

// Operation represents a low-level file system operation.
// These are the actual operations that will be performed by synthfs.
type Operation struct {
	// Type is the type of operation
	Type OperationType

	// Target is the absolute target path
	Target string

	// Content is the content to write (for write operations)
	Content []byte

	// Mode is the file permissions (optional)
	Mode *uint32

	// Description is a human-readable description
	Description string

	// Status is the current state of the operation
	Status OperationStatus
}

// NewWriteOperation returns a ready write of content to target.
func NewWriteOperation(target string, content []byte, description string) Operation {
	return Operation{
		Type:        OperationWriteFile,
		Target:      target,
		Content:     content,
		Description: description,
		Status:      StatusReady,
	}
}

// NewMkdirOperation returns a ready directory creation for target.
func NewMkdirOperation(target string) Operation {
	return Operation{
		Type:        OperationCreateDir,
		Target:      target,
		Description: fmt.Sprintf("create directory %s", target),
		Status:      StatusReady,
	}
}
