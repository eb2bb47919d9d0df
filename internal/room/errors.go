package room

import "errors"

var (
	ErrRoomNotFound  = errors.New("room_not_found")
	ErrUserNotFound  = errors.New("user_not_found")
	ErrNotMaster     = errors.New("not_master")
	ErrInvalidConfig = errors.New("invalid_config")
)
