package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInviteCodeIsExpired(t *testing.T) {
	now := time.Now()

	t.Run("no expiry never expires", func(t *testing.T) {
		ic := &InviteCode{ExpiresAt: nil}
		assert.False(t, ic.IsExpired(now))
	})

	t.Run("future expiry", func(t *testing.T) {
		future := now.Add(time.Hour)
		ic := &InviteCode{ExpiresAt: &future}
		assert.False(t, ic.IsExpired(now))
	})

	t.Run("past expiry", func(t *testing.T) {
		past := now.Add(-time.Hour)
		ic := &InviteCode{ExpiresAt: &past}
		assert.True(t, ic.IsExpired(now))
	})

	t.Run("expiry exactly now counts as expired", func(t *testing.T) {
		exact := now
		ic := &InviteCode{ExpiresAt: &exact}
		assert.True(t, ic.IsExpired(now))
	})
}

func TestInviteCodeAdmissible(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)
	consumer := "0b8a7e66-1111-2222-3333-444455556666"
	usedAt := now.Add(-time.Minute)

	t.Run("active and unexpired", func(t *testing.T) {
		ic := &InviteCode{Status: InviteCodeStatusActive, ExpiresAt: &future}
		assert.Equal(t, InviteRejectionNone, ic.Admissible(now))
	})

	t.Run("used status", func(t *testing.T) {
		ic := &InviteCode{Status: InviteCodeStatusUsed, UsedBy: &consumer, UsedAt: &usedAt, ExpiresAt: &future}
		assert.Equal(t, InviteRejectionAlreadyUsed, ic.Admissible(now))
	})

	t.Run("disabled status", func(t *testing.T) {
		ic := &InviteCode{Status: InviteCodeStatusDisabled, ExpiresAt: &future}
		assert.Equal(t, InviteRejectionInvalid, ic.Admissible(now))
	})

	t.Run("expired", func(t *testing.T) {
		ic := &InviteCode{Status: InviteCodeStatusActive, ExpiresAt: &past}
		assert.Equal(t, InviteRejectionExpired, ic.Admissible(now))
	})

	// Порядок проверок фиксирован: потребление важнее истечения
	t.Run("used wins over expired", func(t *testing.T) {
		ic := &InviteCode{Status: InviteCodeStatusUsed, UsedBy: &consumer, UsedAt: &usedAt, ExpiresAt: &past}
		assert.Equal(t, InviteRejectionAlreadyUsed, ic.Admissible(now))
	})

	t.Run("disabled wins over expired", func(t *testing.T) {
		ic := &InviteCode{Status: InviteCodeStatusDisabled, ExpiresAt: &past}
		assert.Equal(t, InviteRejectionInvalid, ic.Admissible(now))
	})

	// Защитный случай: used_by проставлен, но статус остался ACTIVE
	t.Run("consumed but still active", func(t *testing.T) {
		ic := &InviteCode{Status: InviteCodeStatusActive, UsedBy: &consumer, ExpiresAt: &future}
		assert.Equal(t, InviteRejectionAlreadyUsed, ic.Admissible(now))
	})
}

func TestProvisionableUserType(t *testing.T) {
	assert.True(t, ProvisionableUserType(UserTypeClient))
	assert.True(t, ProvisionableUserType(UserTypeSponsor))
	assert.False(t, ProvisionableUserType(UserTypeAdmin))
	assert.False(t, ProvisionableUserType(UserType("UNKNOWN")))
}
