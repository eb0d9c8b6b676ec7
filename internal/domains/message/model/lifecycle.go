package model

import (
	"strings"
	"time"

	"lawfirm-backend/internal/shared/query"
)

type Status string

const (
	StatusUnread  Status = "unread"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// MaxReplyLength bounds admin_reply
const MaxReplyLength = 2000

// Lifecycle is the status machine shared by contacts and inquiries:
// unread -> read (first admin view) -> replied (admin reply).
// There is no way back to unread.
type Lifecycle struct {
	Status     Status     `json:"status"`
	AdminReply *string    `json:"admin_reply"`
	RepliedAt  *time.Time `json:"replied_at"`
}

func NewLifecycle() Lifecycle {
	return Lifecycle{Status: StatusUnread}
}

// MarkAsRead moves unread to read and reports whether anything changed.
// Read and replied messages are left alone.
func (l *Lifecycle) MarkAsRead() bool {
	if l.Status != StatusUnread {
		return false
	}
	l.Status = StatusRead
	return true
}

// MarkAsReplied records the reply and moves the message to replied from
// either unread or read.
func (l *Lifecycle) MarkAsReplied(reply string, at time.Time) error {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return ErrReplyRequired
	}
	if len([]rune(reply)) > MaxReplyLength {
		return ErrReplyTooLong
	}
	l.Status = StatusReplied
	l.AdminReply = &reply
	l.RepliedAt = &at
	return nil
}

func (l Lifecycle) IsUnread() bool { return l.Status == StatusUnread }

// Stats are the per-status counts shown above a message listing
type Stats struct {
	Total   int `json:"total"`
	Unread  int `json:"unread"`
	Read    int `json:"read"`
	Replied int `json:"replied"`
}

// Add counts one message with status s
func (s *Stats) Add(status Status) {
	s.Total++
	switch status {
	case StatusUnread:
		s.Unread++
	case StatusRead:
		s.Read++
	case StatusReplied:
		s.Replied++
	}
}

// LatestFirst orders by created_at descending, ties by id descending
func LatestFirst[T any](created func(T) time.Time, id func(T) string) func(a, b T) bool {
	return func(a, b T) bool {
		ca, cb := created(a), created(b)
		if !ca.Equal(cb) {
			return ca.After(cb)
		}
		return id(a) > id(b)
	}
}

// ListResponse is an admin message listing: one page, the applied filter
// and the unfiltered status counts
type ListResponse[T any] struct {
	Items   query.Paginator[T] `json:"items"`
	Filters query.Filter       `json:"filters"`
	Stats   Stats              `json:"stats"`
}
