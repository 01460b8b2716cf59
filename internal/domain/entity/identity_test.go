package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginHistory_Append_DeduplicatesKeepingFirstSeenOrder(t *testing.T) {
	history := &LoginHistory{}

	history.Append("a@example.com")
	history.Append("b@example.com")
	history.Append("a@example.com")

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, history.Emails)
}

func TestLoginHistory_Contains(t *testing.T) {
	history := &LoginHistory{Emails: []string{"a@example.com"}}

	assert.True(t, history.Contains("a@example.com"))
	assert.False(t, history.Contains("b@example.com"))
}

func TestAuthorizationStatus_Valid(t *testing.T) {
	assert.True(t, AuthorizationNotDetermined.Valid())
	assert.True(t, AuthorizationGranted.Valid())
	assert.True(t, AuthorizationDenied.Valid())
	assert.False(t, AuthorizationStatus("restricted").Valid())
}
