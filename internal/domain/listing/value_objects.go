package listing

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title exceeds maximum length")
	ErrEmptyCity         = errors.New("city cannot be empty")
	ErrInvalidRate       = errors.New("nightly rate must be positive")
	ErrNoImages          = errors.New("at least one image is required")
	ErrTooManyImages     = errors.New("too many images")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)

const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 2000
	MaxImages            = 8
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if len(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: t}, nil
}

func (t Title) String() string { return t.value }

type City struct {
	value string
}

func NewCity(s string) (City, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return City{}, ErrEmptyCity
	}
	return City{value: t}, nil
}

func (c City) String() string { return c.value }

// NightlyRate is the per-night price in cents.
type NightlyRate struct {
	cents int64
}

func NewNightlyRate(cents int64) (NightlyRate, error) {
	if cents <= 0 {
		return NightlyRate{}, ErrInvalidRate
	}
	return NightlyRate{cents: cents}, nil
}

func (r NightlyRate) Cents() int64 { return r.cents }

func (r NightlyRate) Dollars() float64 { return float64(r.cents) / 100.0 }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: t}, nil
}

func (d Description) String() string { return d.value }
