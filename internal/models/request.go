package models

import (
	"fmt"
	"time"
)

// RequestStatus represents the approval state of a media request
type RequestStatus int

const (
	RequestStatusPendingApproval RequestStatus = 1
	RequestStatusApproved        RequestStatus = 2
	RequestStatusDeclined        RequestStatus = 3
)

func (s RequestStatus) String() string {
	switch s {
	case RequestStatusPendingApproval:
		return "pending approval"
	case RequestStatusApproved:
		return "approved"
	case RequestStatusDeclined:
		return "declined"
	}
	return fmt.Sprintf("RequestStatus(%d)", int(s))
}

// SeasonRequest is one season covered by a TV request
type SeasonRequest struct {
	ID           int `json:"id"`
	SeasonNumber int `json:"seasonNumber"`
	Status       int `json:"status"`
}

// MediaRequest is the server's record of a submitted request
type MediaRequest struct {
	ID          int             `json:"id"`
	Status      RequestStatus   `json:"status"`
	Media       *MediaInfo      `json:"media,omitempty"`
	Seasons     []SeasonRequest `json:"seasons,omitempty"`
	RequestedBy *User           `json:"requestedBy,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
