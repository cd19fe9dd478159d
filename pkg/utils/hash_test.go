package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexUpper = regexp.MustCompile(`^[0-9A-F]{64}$`)

func TestIntegrityHash_Format(t *testing.T) {
	for _, content := range []string{"", "termo de aceite", "conteúdo com acentuação çãé"} {
		hash := IntegrityHash(content)
		assert.Regexp(t, hexUpper, hash)
	}
}

func TestIntegrityHash_Deterministic(t *testing.T) {
	content := "CONSENTIMENTO PARA TRATAMENTO DE DADOS PESSOAIS"
	assert.Equal(t, IntegrityHash(content), IntegrityHash(content))
}

func TestIntegrityHash_SensitiveToAnyChange(t *testing.T) {
	base := IntegrityHash("termo versão 1.0")
	for _, other := range []string{
		"termo versão 1.1",
		"termo versão 1.0 ",
		"Termo versão 1.0",
	} {
		assert.NotEqual(t, base, IntegrityHash(other))
	}
}

func TestIntegrityHash_KnownVector(t *testing.T) {
	// SHA-256("abc")
	assert.Equal(t,
		"BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD",
		IntegrityHash("abc"))
}

func TestIntegrityHashBytes_MatchesStringVariant(t *testing.T) {
	content := "artefato renderizado"
	assert.Equal(t, IntegrityHash(content), IntegrityHashBytes([]byte(content)))
}
