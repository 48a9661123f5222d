package storage

import (
	"io"
	"time"
)

// Provider defines the behavior for any video asset backend.
type Provider interface {
	Get(key string) (*VideoObject, error)
	Exists(key string) (bool, error)
	List() ([]string, error)
}

// VideoObject is the provider-agnostic representation of a video file.
type VideoObject struct {
	Body          io.ReadCloser
	ContentLength int64
	ContentType   string
	LastModified  time.Time
}
