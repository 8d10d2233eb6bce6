package utils

import "strings"

// NormalizeEmail приводит email к канонической форме для хранения и
// сравнения: обрезанные пробелы, нижний регистр. Уникальность email
// в БД проверяется по нормализованной форме.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
