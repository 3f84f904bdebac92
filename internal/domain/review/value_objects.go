package review

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

const MaxCommentLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment is optional free text; empty is valid.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

func (c Comment) IsEmpty() bool { return c.text == "" }
