package writer

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithFields(logrus.Fields{
	"pkg": "fake/writer",
})

// ErrFull is returned by writes past the limit.
var ErrFull = errors.New("fake writer full")

// FakeWriter accepts up to Limit bytes, then fails every write.
type FakeWriter struct {
	Limit   int
	Written []byte
}

func New(limit int) *FakeWriter {
	return &FakeWriter{Limit: limit}
}

func (w *FakeWriter) Write(p []byte) (n int, err error) {
	room := w.Limit - len(w.Written)
	if room >= len(p) {
		w.Written = append(w.Written, p...)
		logger.Debugf("write %d bytes", len(p))
		return len(p), nil
	}

	if room > 0 {
		w.Written = append(w.Written, p[:room]...)
		n = room
	}

	logger.Debugf("write %d bytes: full after %d", len(p), n)
	return n, ErrFull
}
