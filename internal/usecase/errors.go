package usecase

import "errors"

var (
	// ErrUnauthenticated is returned when an operation requires a resolved
	// principal and the request is anonymous.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the principal is neither the owner of
	// the target entity nor privileged.
	ErrForbidden = errors.New("not allowed to modify this resource")

	// ErrSelfSubscription is returned when a user tries to subscribe to
	// their own channel.
	ErrSelfSubscription = errors.New("cannot subscribe to yourself")

	// ErrEmptySearchQuery is returned when a search is requested without a
	// query string.
	ErrEmptySearchQuery = errors.New("search query cannot be empty")

	// ErrParentVideoMismatch is returned when a reply names a parent
	// comment that belongs to a different video.
	ErrParentVideoMismatch = errors.New("parent comment belongs to a different video")

	// ErrNestedReply is returned when a reply targets another reply;
	// threading is one level deep.
	ErrNestedReply = errors.New("cannot reply to a reply")
)
