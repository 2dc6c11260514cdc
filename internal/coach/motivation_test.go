package coach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomMotivation_AlwaysFromFixedSet(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		phrase := RandomMotivation()
		assert.Contains(t, MotivationPhrases, phrase)
		seen[phrase] = true
	}
	assert.Greater(t, len(seen), 1)
}
