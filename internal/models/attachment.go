package models

import "time"

// LinkFileType marks an attachment that is an external hyperlink
// instead of an uploaded object.
const LinkFileType = "link"

type Attachment struct {
	Id         string
	TaskId     string
	FileName   string
	FilePath   string
	FileType   string // MIME type, or LinkFileType
	FileSize   *int64
	URL        string
	UploadedAt time.Time
}

func (a Attachment) IsLink() bool {
	return a.FileType == LinkFileType
}

// UploadTarget is the signed destination handed out by the backend for
// a direct upload to object storage.
type UploadTarget struct {
	UploadURL string
	FilePath  string
}
