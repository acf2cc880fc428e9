package domain

import "errors"

var (
	// ErrInvalidAmount is returned when a negative points amount is supplied.
	ErrInvalidAmount = errors.New("invalid points amount")
	// ErrPersistenceFailure indicates the durable store did not confirm a write.
	ErrPersistenceFailure = errors.New("progress may not be saved")
	// ErrNotAuthenticated is returned for commands issued without an open session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUnknownLevel indicates a level id absent from the tier's catalog.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrProfileNotFound is returned by record stores when no record exists for a user.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidTier indicates an unsupported age tier label.
	ErrInvalidTier = errors.New("invalid age tier")
	// ErrLevelLocked is returned when a quiz is started on a locked level.
	ErrLevelLocked = errors.New("level is locked")
	// ErrSessionNotFound is returned when a quiz session does not exist or expired.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrInvalidPhase is returned when a quiz action does not fit the session phase.
	ErrInvalidPhase = errors.New("action not allowed in current quiz phase")
	// ErrOptionNotFound indicates a submitted option index is out of range.
	ErrOptionNotFound = errors.New("option not found")
	// ErrUnknownVideo indicates a video id absent from the library.
	ErrUnknownVideo = errors.New("unknown video")
	// ErrEmptyMessage is returned for blank chatbot messages and community posts.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrPostNotFound indicates a community post id that does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrAccountExists is returned on signup with a taken name.
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidCredentials is returned on a failed sign in.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
