package interfaces

import "context"

// IFileStorage abstracts object storage for contract PDFs and property
// images. The engine only stores the returned URL; size/MIME policing is the
// caller's job.
type IFileStorage interface {
	Store(ctx context.Context, data []byte, contentType, folder string) (string, error)
}
