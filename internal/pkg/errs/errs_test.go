//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"smartlocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("no locker available")

	t.Run("sentinel is reachable from the standard errors.Is", func(t *testing.T) {
		cause := errs.New("acquire failed: no rows in result set")
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("original cause stays in the chain", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Mark(errs.Wrap(cause, "acquire failed"), sentinel)

		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)

		assert.ErrorIs(t, err, sentinel)
	})
}
