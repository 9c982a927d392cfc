package cppref_test

import (
	"fmt"
	"testing"

	"github.com/awalczyk/cppref"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cppref.Errorf(cppref.ENOTFOUND, "page %q not cached", "std::vector")

	assert.Equal(t, cppref.ENOTFOUND, cppref.ErrorCode(err))
	assert.Equal(t, "page \"std::vector\" not cached", cppref.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cppref.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cppref.EINTERNAL, cppref.ErrorCode(fmt.Errorf("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cppref.ErrorMessage(nil))
}
