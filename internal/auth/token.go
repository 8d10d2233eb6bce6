package auth

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// inviteCodeAlphabet не содержит похожих друг на друга символов (0/O, 1/I/L)
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// InviteCodeLength - длина генерируемого инвайт-кода
const InviteCodeLength = 8

// GenerateVerificationToken генерирует криптостойкий одноразовый токен
// подтверждения email: 32 случайных байта в hex (64 символа)
func GenerateVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateInviteCode генерирует случайный 8-символьный инвайт-код
func GenerateInviteCode() (string, error) {
	code := make([]byte, InviteCodeLength)
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
