package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAttendanceCode(t *testing.T) {
	never := func(code string) (bool, error) { return false, nil }

	t.Run("formato: 6 chars do alfabeto sem ambíguos", func(t *testing.T) {
		code, err := GenerateAttendanceCode(never)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.Contains(t, codeAlphabet, string(r))
		}
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
	})

	t.Run("colisão: sorteia de novo até achar livre", func(t *testing.T) {
		calls := 0
		exists := func(code string) (bool, error) {
			calls++
			return calls <= 3, nil // três primeiros sorteios "ocupados"
		}
		code, err := GenerateAttendanceCode(exists)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Equal(t, 4, calls)
	})

	t.Run("espaço esgotado: ErrCodeExhausted após 20 tentativas", func(t *testing.T) {
		calls := 0
		always := func(code string) (bool, error) {
			calls++
			return true, nil
		}
		_, err := GenerateAttendanceCode(always)
		require.ErrorIs(t, err, ErrCodeExhausted)
		assert.Equal(t, 20, calls)
	})

	t.Run("códigos sucessivos variam", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			code, err := GenerateAttendanceCode(never)
			require.NoError(t, err)
			seen[code] = true
		}
		// 32^6 combinações: 50 sorteios repetidos seriam um RNG quebrado
		assert.Greater(t, len(seen), 45)
	})
}

func TestCodeAlphabetHasNoAmbiguousChars(t *testing.T) {
	for _, banned := range []string{"0", "O", "1", "I"} {
		assert.False(t, strings.Contains(codeAlphabet, banned), "alfabeto não deve conter %q", banned)
	}
	assert.Len(t, codeAlphabet, 32)
}
