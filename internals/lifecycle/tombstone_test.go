package lifecycle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMarkDeleted(t *testing.T) {
	actor := uuid.New()
	var f TombstoneFields

	now := time.Now()
	f.MarkDeleted(now, &actor)

	assert.True(t, f.IsDeleted)
	if assert.NotNil(t, f.DeletedAt) {
		assert.Equal(t, now, *f.DeletedAt)
	}
	assert.Equal(t, &actor, f.DeletedBy)
}

func TestMarkDeletedIdempotent(t *testing.T) {
	var f TombstoneFields
	f.MarkDeleted(time.Now(), nil)

	// panggilan kedua: timestamp boleh bergeser, status tetap terhapus
	later := time.Now().Add(time.Minute)
	f.MarkDeleted(later, nil)

	assert.True(t, f.IsDeleted)
	if assert.NotNil(t, f.DeletedAt) {
		assert.Equal(t, later, *f.DeletedAt)
	}
}

func TestMarkDeletedWithoutActor(t *testing.T) {
	// acting-user tidak tersedia → bukan kondisi fatal, deleted_by NULL
	var f TombstoneFields
	f.MarkDeleted(time.Now(), nil)

	assert.True(t, f.IsDeleted)
	assert.NotNil(t, f.DeletedAt)
	assert.Nil(t, f.DeletedBy)
}

func TestRestore(t *testing.T) {
	actor := uuid.New()
	var f TombstoneFields
	f.MarkDeleted(time.Now(), &actor)

	f.Restore()

	assert.False(t, f.IsDeleted)
	assert.Nil(t, f.DeletedAt)
	assert.Nil(t, f.DeletedBy)
}

func TestIsTombstonedKind(t *testing.T) {
	assert.True(t, IsTombstonedKind("santri"))
	assert.True(t, IsTombstonedKind("hafalan_record"))
	assert.True(t, IsTombstonedKind("donation"))

	// kind di luar daftar lewat tanpa intersepsi
	assert.False(t, IsTombstonedKind("token_blacklist"))
	assert.False(t, IsTombstonedKind(""))
}
