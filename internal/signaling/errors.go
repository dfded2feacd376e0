package signaling

import "errors"

// ErrRoomNotFound indicates that the requested room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrPasswordRequired indicates that a join was rejected because the room
// password was missing or wrong.
var ErrPasswordRequired = errors.New("room password required or incorrect")

// ErrDuplicateID indicates that a connection id is already registered.
// With random ids this should never happen; callers treat it as fatal
// for the offending connection.
var ErrDuplicateID = errors.New("connection id already registered")
