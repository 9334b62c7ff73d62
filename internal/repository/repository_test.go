package repository

import (
	"errors"
	"testing"

	"github.com/tj/assert"
)

func TestCloseOnError(t *testing.T) {
	errMigrate := errors.New("failed to migrate weather table")
	errClose := errors.New("connection already closed")

	cases := []struct {
		name        string
		closeErr    error
		expectClose bool
	}{
		{name: "close succeeds", closeErr: nil},
		{name: "close fails", closeErr: errClose, expectClose: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var closed int
			err := closeOnError(errMigrate, func() error {
				closed++
				return tc.closeErr
			})

			assert.Equal(t, 1, closed)
			assert.True(t, errors.Is(err, errMigrate))
			assert.Equal(t, tc.expectClose, errors.Is(err, errClose))
		})
	}
}
