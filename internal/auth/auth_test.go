package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_IsAuthorized(t *testing.T) {
	checker := New([]int64{111, 222})

	assert.True(t, checker.IsAuthorized(111))
	assert.True(t, checker.IsAuthorized(222))
	assert.False(t, checker.IsAuthorized(333))
	assert.False(t, checker.IsAuthorized(0))
}

func TestChecker_EmptyAllowList(t *testing.T) {
	checker := New(nil)

	assert.False(t, checker.IsAuthorized(111))
	assert.Empty(t, checker.ChatIDs())
}

func TestChecker_ChatIDsKeepsOrder(t *testing.T) {
	checker := New([]int64{222, 111})

	assert.Equal(t, []int64{222, 111}, checker.ChatIDs())
}
