package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmailVerificationTokenIsExpired(t *testing.T) {
	now := time.Now()

	vt := &EmailVerificationToken{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, vt.IsExpired(now))

	vt = &EmailVerificationToken{ExpiresAt: now.Add(-time.Hour)}
	assert.True(t, vt.IsExpired(now))

	// Граница включающая: expires_at, равный now, уже истек
	vt = &EmailVerificationToken{ExpiresAt: now}
	assert.True(t, vt.IsExpired(now))
}

func TestEmailVerificationTokenIsConsumed(t *testing.T) {
	vt := &EmailVerificationToken{}
	assert.False(t, vt.IsConsumed())

	usedAt := time.Now()
	vt.UsedAt = &usedAt
	assert.True(t, vt.IsConsumed())
}
