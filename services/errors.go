package services

import "errors"

var (
	// ErrAuthFailed deliberately carries no provider detail.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrEntryNotFound covers both a missing entry and one owned by another
	// user, so callers cannot enumerate other people's entries.
	ErrEntryNotFound = errors.New("entry not found")

	ErrGroupNotFound  = errors.New("group not found")
	ErrNotGroupMember = errors.New("not a member of this group")
)
