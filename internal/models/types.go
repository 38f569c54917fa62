package models

import (
	"encoding/json"
	"fmt"
)

// MediaType represents the type of media (movie or tv show)
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeTV     MediaType = "tv"
	MediaTypePerson MediaType = "person" // search results only
)

// Valid reports whether t is a requestable media type
func (t MediaType) Valid() bool {
	return t == MediaTypeMovie || t == MediaTypeTV
}

// ParseMediaType converts user input into a requestable media type
func ParseMediaType(s string) (MediaType, error) {
	t := MediaType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid media type %q (expected movie or tv)", s)
	}
	return t, nil
}

// MediaStatus represents the availability of a media item on the server.
// The zero value means the server sent no status (never requested).
type MediaStatus int

const (
	MediaStatusUnknown            MediaStatus = 1
	MediaStatusPending            MediaStatus = 2
	MediaStatusProcessing         MediaStatus = 3
	MediaStatusPartiallyAvailable MediaStatus = 4
	MediaStatusAvailable          MediaStatus = 5
)

// MediaStatuses lists every status the server can report
var MediaStatuses = []MediaStatus{
	MediaStatusUnknown,
	MediaStatusPending,
	MediaStatusProcessing,
	MediaStatusPartiallyAvailable,
	MediaStatusAvailable,
}

// Valid reports whether s is one of the enumerated statuses
func (s MediaStatus) Valid() bool {
	return s >= MediaStatusUnknown && s <= MediaStatusAvailable
}

// UnmarshalJSON rejects integers outside the enumeration
func (s *MediaStatus) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("media status: %w", err)
	}
	status := MediaStatus(v)
	if !status.Valid() {
		return fmt.Errorf("unexpected media status %d", v)
	}
	*s = status
	return nil
}

// Label returns the display label. UNKNOWN and absent statuses have no badge.
func (s MediaStatus) Label() string {
	switch s {
	case 0, MediaStatusUnknown:
		return ""
	case MediaStatusPending:
		return "pending"
	case MediaStatusProcessing:
		return "requested"
	case MediaStatusPartiallyAvailable:
		return "partially available"
	case MediaStatusAvailable:
		return "available"
	}
	panic(fmt.Sprintf("unhandled media status %d", int(s)))
}

func (s MediaStatus) String() string {
	switch s {
	case 0:
		return "ABSENT"
	case MediaStatusUnknown:
		return "UNKNOWN"
	case MediaStatusPending:
		return "PENDING"
	case MediaStatusProcessing:
		return "PROCESSING"
	case MediaStatusPartiallyAvailable:
		return "PARTIALLY_AVAILABLE"
	case MediaStatusAvailable:
		return "AVAILABLE"
	}
	return fmt.Sprintf("MediaStatus(%d)", int(s))
}

// Requestable reports whether a request can be submitted for media in this status
func (s MediaStatus) Requestable() bool {
	return s == 0 || s == MediaStatusUnknown
}

// IssueType represents the category of a reported issue
type IssueType int

const (
	IssueTypeVideo    IssueType = 1
	IssueTypeAudio    IssueType = 2
	IssueTypeSubtitle IssueType = 3
	IssueTypeOther    IssueType = 4
)

// IssueTypes lists every issue category
var IssueTypes = []IssueType{IssueTypeVideo, IssueTypeAudio, IssueTypeSubtitle, IssueTypeOther}

// UnmarshalJSON rejects integers outside the enumeration
func (t *IssueType) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("issue type: %w", err)
	}
	it := IssueType(v)
	if it < IssueTypeVideo || it > IssueTypeOther {
		return fmt.Errorf("unexpected issue type %d", v)
	}
	*t = it
	return nil
}

// Label returns the display label of the issue type
func (t IssueType) Label() string {
	switch t {
	case IssueTypeVideo:
		return "Video"
	case IssueTypeAudio:
		return "Audio"
	case IssueTypeSubtitle:
		return "Subtitle"
	case IssueTypeOther:
		return "Other"
	}
	panic(fmt.Sprintf("unhandled issue type %d", int(t)))
}

// IssueStatus represents whether an issue is still open
type IssueStatus int

const (
	IssueStatusOpen     IssueStatus = 1
	IssueStatusResolved IssueStatus = 2
)

// Action returns the path segment used to move an issue into this status
func (s IssueStatus) Action() string {
	switch s {
	case IssueStatusOpen:
		return "open"
	case IssueStatusResolved:
		return "resolved"
	}
	panic(fmt.Sprintf("unhandled issue status %d", int(s)))
}

func (s IssueStatus) String() string {
	switch s {
	case IssueStatusOpen:
		return "open"
	case IssueStatusResolved:
		return "resolved"
	}
	return fmt.Sprintf("IssueStatus(%d)", int(s))
}
