// Package utils provides common utility functions.
package utils

import "time"

// IdadeEm returns the age in whole years at the reference date.
func IdadeEm(nascimento, referencia time.Time) int {
	idade := referencia.Year() - nascimento.Year()
	// Birthday not yet reached this year.
	if referencia.Month() < nascimento.Month() ||
		(referencia.Month() == nascimento.Month() && referencia.Day() < nascimento.Day()) {
		idade--
	}
	return idade
}

// Idade returns the age in whole years today (UTC).
func Idade(nascimento time.Time) int {
	return IdadeEm(nascimento, time.Now().UTC())
}
