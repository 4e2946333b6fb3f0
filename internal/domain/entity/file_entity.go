package entity

import (
	"time"
)

// FileType distinguishes folders from content-bearing records.
// The worker only generates thumbnails for TypeImage, so file and image
// stay separate values even though the request path treats them alike.
type FileType string

const (
	TypeFolder FileType = "folder"
	TypeFile   FileType = "file"
	TypeImage  FileType = "image"
)

// Valid reports whether t is one of the three accepted type values.
func (t FileType) Valid() bool {
	switch t {
	case TypeFolder, TypeFile, TypeImage:
		return true
	}
	return false
}

// RootParentID marks a file attached directly under the synthetic root.
const RootParentID = "0"

// File is a node in a per-user forest rooted at RootParentID.
// LocalPath is only set for content-bearing types and never leaves the API.
type File struct {
	ID        string
	UserID    string
	Name      string
	Type      FileType
	ParentID  string
	IsPublic  bool
	LocalPath string
	CreatedAt time.Time
}

// HasContent reports whether the record carries bytes in the blob store.
func (f *File) HasContent() bool {
	return f.Type != TypeFolder
}

// VisibleTo is the single read-visibility policy: owners always see their
// files, everyone else only sees published ones. Ownership misses are
// reported as not-found by callers so existence is never leaked.
func (f *File) VisibleTo(requesterID string) bool {
	return f.IsPublic || (requesterID != "" && f.UserID == requesterID)
}
