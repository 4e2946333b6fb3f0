package queue

// FileJob is the payload enqueued after a non-folder upload commits.
// The consumer re-checks that the file still exists and is an image
// before generating thumbnails; absence is not an error here.
type FileJob struct {
	FileID string `json:"fileId"`
	UserID string `json:"userId"`
}

// UserJob is the payload enqueued after registration. An empty UserID is a
// failure signal emitted when user creation itself failed.
type UserJob struct {
	UserID string `json:"userId,omitempty"`
}
