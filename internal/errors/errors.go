package errors

import "errors"

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrEmailInUse = errors.New("email already in use")
var ErrNotAuthenticated = errors.New("user is not authenticated")
var ErrForbidden = errors.New("operation is forbidden for user")
var ErrSelectionNotFound = errors.New("selected event or dance no longer exists")
var ErrDanceNotInEvent = errors.New("dance is not offered at this event")
var ErrPartnerUnavailable = errors.New("partner is not available")
var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidStep = errors.New("operation is not valid at this workflow step")
