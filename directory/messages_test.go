package directory

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/store"
)

func TestUserMessage_OneMessagePerKind(t *testing.T) {
	kinds := []error{
		ErrorInvalidInput,
		ErrorDuplicateEmail,
		ErrorPasswordMismatch,
		ErrorWeakPassword,
		ErrorWrongOldPassword,
		store.ErrorNotFound,
	}

	seen := map[string]bool{}
	for _, kind := range kinds {
		msg := UserMessage(kind)
		assert.NotEmpty(t, msg, "kind %v", kind)
		assert.False(t, seen[msg], "message %q reused across kinds", msg)
		seen[msg] = true

		// wrapping must not change the message
		assert.Equal(t, msg, UserMessage(fmt.Errorf("op failed: %w", kind)))
	}
}

func TestUserMessage_Fallbacks(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(errors.New("io error")))
}
