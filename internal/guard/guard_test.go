package guard

import (
	"testing"

	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	g := New()

	t.Run("nil user", func(t *testing.T) {
		err := g.Authenticate(nil, "access notes")
		require.Error(t, err)
		assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
		assert.EqualError(t, err, "Cannot access notes, you are unauthenticated")
	})

	t.Run("empty user id", func(t *testing.T) {
		err := g.Authenticate(&entity.User{}, "edit notes")
		require.Error(t, err)
		assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
	})

	t.Run("valid session", func(t *testing.T) {
		assert.NoError(t, g.Authenticate(&entity.User{Id: "u1"}, "access notes"))
	})
}

func TestAuthorize(t *testing.T) {
	g := New()
	owner := &entity.User{Id: "u1"}
	stranger := &entity.User{Id: "u2"}
	note := &entity.Note{NoteId: "n1", UserId: "u1"}
	notebook := &entity.Notebook{NotebookId: "nb1", UserId: "u1"}

	assert.True(t, g.Authorize(owner, note))
	assert.True(t, g.Authorize(owner, notebook))

	// Ownership is the only grant.
	assert.False(t, g.Authorize(stranger, note))
	assert.False(t, g.Authorize(stranger, notebook))
	assert.False(t, g.Authorize(nil, note))
	assert.False(t, g.Authorize(owner, nil))
}
