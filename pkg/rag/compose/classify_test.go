package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-legalaid-be/internal/constant"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Is Article 14 a fundamental right?", constant.CategoryConstitutional},
		{"How do I file a PIL?", constant.CategoryConstitutional},
		{"What is the punishment for theft under the IPC?", constant.CategoryCriminal},
		{"Can I get a refund for defective goods?", constant.CategoryConsumer},
		{"What are the duties of a company director?", constant.CategoryCorporate},
		{"How does divorce work under Hindu law?", constant.CategoryFamily},
		{"My landlord will not return the deposit", constant.CategoryProperty},
		{"Can my employer withhold wages?", constant.CategoryLabour},
		{"What happens on breach of an agreement?", constant.CategoryCivil},
		{"Hello, how are you today?", constant.CategoryGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.text), "Classify(%q)", tt.text)
	}
}

// The first matching rule wins, so text mixing constitutional and criminal
// vocabulary lands in the constitutional bucket.
func TestClassifyFirstRuleWins(t *testing.T) {
	got := Classify("Is the constitution violated by this criminal statute?")
	assert.Equal(t, constant.CategoryConstitutional, got)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, constant.CategoryCriminal, Classify("MURDER under the penal code"))
}
