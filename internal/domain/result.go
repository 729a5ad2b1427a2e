package domain

import "errors"

// ResultKind type
type ResultKind string

const (
	// ResultText const
	ResultText ResultKind = "text"
	// ResultImage const
	ResultImage ResultKind = "image"
	// ResultAudio const
	ResultAudio ResultKind = "audio"
)

// OperationResult is the terminal outcome of one request.
// On success exactly one of Content, ImageURL and AudioFilePath is set;
// on failure only Error is set. Cancelled runs are neither.
type OperationResult struct {
	Success         bool       `json:"success"`
	Cancelled       bool       `json:"cancelled,omitempty"`
	Kind            ResultKind `json:"resultKind,omitempty"`
	Content         *string    `json:"content,omitempty"`
	Error           *string    `json:"error,omitempty"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	AudioFilePath   *string    `json:"audioFilePath,omitempty"`
	AudioFormat     *string    `json:"audioFormat,omitempty"`
	SkippedPayloads int        `json:"skippedPayloads,omitempty"`

	Err error `json:"-"`
}

// TextResult func
func TextResult(content string) OperationResult {
	return OperationResult{Success: true, Kind: ResultText, Content: &content}
}

// ImageResult func
func ImageResult(url string) OperationResult {
	return OperationResult{Success: true, Kind: ResultImage, ImageURL: &url}
}

// AudioResult func
func AudioResult(path, format string) OperationResult {
	return OperationResult{Success: true, Kind: ResultAudio, AudioFilePath: &path, AudioFormat: &format}
}

// FailedResult func
func FailedResult(err error) OperationResult {
	msg := err.Error()
	return OperationResult{Error: &msg, Err: err}
}

// CancelledResult func
func CancelledResult() OperationResult {
	msg := ErrCancelled.Error()
	return OperationResult{Cancelled: true, Error: &msg, Err: ErrCancelled}
}

// ResultFromError maps an error to a failed or cancelled result
func ResultFromError(err error) OperationResult {
	if errors.Is(err, ErrCancelled) {
		return CancelledResult()
	}
	return FailedResult(err)
}

// NotificationKind type
type NotificationKind string

const (
	// NotifyChunk carries one delta
	NotifyChunk NotificationKind = "chunk"
	// NotifyDone marks the provider end-of-stream sentinel
	NotifyDone NotificationKind = "done"
	// NotifyCancelled marks a cancelled stream
	NotifyCancelled NotificationKind = "cancelled"
)

// StreamNotification is one incremental event of a streaming operation
type StreamNotification struct {
	Kind    NotificationKind `json:"kind"`
	Delta   string           `json:"content"`
	IsFinal bool             `json:"done"`
}

// StreamNotifier receives notifications in stream order
type StreamNotifier func(StreamNotification)
