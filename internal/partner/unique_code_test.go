package partner_test

import (
	"regexp"
	"testing"

	"github.com/archit-sahay/Aibo-Meikan/internal/partner"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUniqueCode(t *testing.T) {
	pattern := regexp.MustCompile(`^PART-[0-9A-F]{8}$`)

	t.Run("matches the PART-XXXXXXXX format", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := partner.GenerateUniqueCode()
			assert.NoError(t, err)
			assert.Regexp(t, pattern, code)
		}
	})

	t.Run("draws are distinct in practice", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			code, err := partner.GenerateUniqueCode()
			assert.NoError(t, err)
			if _, dup := seen[code]; dup {
				t.Fatalf("duplicate code %s after %d draws", code, i+1)
			}
			seen[code] = struct{}{}
		}
	})
}
