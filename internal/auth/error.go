package auth

import "errors"

var ErrInvalidToken = errors.New("invalid token")
var ErrNotAdmin = errors.New("caller may not administer entitlements")
var ErrUnexpectedSignMethod = errors.New("unexpected signing method")
