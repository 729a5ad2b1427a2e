package output

import "time"

// MediaStore interface - Output port for generated media files
type MediaStore interface {
	// SaveAudio writes audio bytes and returns the stored file path.
	SaveAudio(data []byte, format string) (string, error)
	// Delete removes a stored file. Paths outside the store are ignored.
	Delete(path string) error
	// Cleanup removes stored files last modified before the cutoff and
	// returns how many were removed.
	Cleanup(before time.Time) (int, error)
}
