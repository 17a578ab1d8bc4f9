package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomName       = errors.New("room name cannot be empty")
	ErrRoomNameTooLong     = errors.New("room name is too long (max 255 characters)")
	ErrNonPositiveCapacity = errors.New("room capacity must be positive")
	ErrDescriptionTooLong  = errors.New("room description is too long (max 1000 characters)")
	ErrLocationTooLong     = errors.New("room location is too long (max 255 characters)")
)

const (
	MaxRoomNameLength    = 255
	MaxDescriptionLength = 1000
	MaxLocationLength    = 255
)

type ID int64

// Room is read-only from the admission side.
type Room struct {
	id          ID
	name        string
	capacity    int
	description *string
	location    *string
}

func NewRoom(id ID, name string, capacity int, description, location *string) (*Room, error) {
	if err := validateRoomName(name); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}
	if description != nil && len(*description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if location != nil && len(*location) > MaxLocationLength {
		return nil, ErrLocationTooLong
	}

	return &Room{
		id:          id,
		name:        strings.TrimSpace(name),
		capacity:    capacity,
		description: description,
		location:    location,
	}, nil
}

func validateRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

func (r *Room) ID() ID               { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Description() *string { return r.description }
func (r *Room) Location() *string    { return r.location }
