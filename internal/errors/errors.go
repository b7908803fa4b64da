// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrSearchTermTooShort = errors.New("search term must be at least 2 characters")
)

// Auth errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Opportunity errors
var (
	ErrOpportunityNotFound     = errors.New("opportunity not found")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// Team member errors. The first two messages are shown to end users verbatim.
var (
	ErrMaxTeamMembers      = errors.New("Maximum team members limit reached (2)")
	ErrRoleAlreadyAssigned = errors.New("This role is already assigned to another team member")
	ErrTeamMemberNotFound  = errors.New("team member not found")
	ErrAlreadyTeamMember   = errors.New("user is already a member of this team")
	ErrInvalidRole         = errors.New("invalid team role")
	ErrInvalidAccessLevel  = errors.New("invalid access level, must be Edit or Read")
)

// Share sync errors
var (
	ErrShareQueueFull = errors.New("share sync queue is full")
)

// RemoteError is a failed call against the roster API as seen by a client.
// Message holds the server-provided text, which may be empty.
type RemoteError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote call failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote call failed with status %d: %s", e.StatusCode, e.Message)
}

// ServerMessage returns the server-provided message of err when err wraps a
// RemoteError carrying one, or an empty string otherwise.
func ServerMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	return ""
}
