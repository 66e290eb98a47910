package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	t.Run("nil error is a success", func(t *testing.T) {
		req := require.New(t)
		msg, colour := Status(nil, "Successfully added group")
		req.Equal("Successfully added group", msg)
		req.Equal(ColourSuccess, colour)
	})

	t.Run("wrapped sentinel keeps its message", func(t *testing.T) {
		req := require.New(t)
		msg, colour := Status(fmt.Errorf("%w: group Sales", ErrAlreadyExists), "ignored")
		req.Equal("This entry already exists", msg)
		req.Equal(ColourFailure, colour)
	})

	t.Run("unknown error falls back to a generic failure", func(t *testing.T) {
		req := require.New(t)
		msg, colour := Status(fmt.Errorf("disk on fire"), "ignored")
		req.Equal("Something went wrong, please try again", msg)
		req.Equal(ColourFailure, colour)
	})
}
