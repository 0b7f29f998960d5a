package catalog

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("record already exists")
	ErrRoomTypeInUse = errors.New("room type still has rooms assigned")
	ErrRoomInUse     = errors.New("room still has active reservations")
	ErrUnknownType   = errors.New("room type does not exist")
)
