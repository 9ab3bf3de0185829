package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithoutDeleted(t *testing.T) {
	assert.Equal(t, Predicate{"is_deleted": false}, WithoutDeleted(nil))

	in := Predicate{"role": "admin"}
	out := WithoutDeleted(in)
	assert.Equal(t, Predicate{"role": "admin", "is_deleted": false}, out)

	// input tidak boleh dimutasi
	assert.Equal(t, Predicate{"role": "admin"}, in)
}

func TestOnlyDeleted(t *testing.T) {
	out := OnlyDeleted(Predicate{"role": "ADMIN"})
	assert.Equal(t, Predicate{"role": "ADMIN", "is_deleted": true}, out)

	// override default: caller minta yang terhapus, dapat yang terhapus
	out = OnlyDeleted(WithoutDeleted(nil))
	assert.Equal(t, true, out["is_deleted"])
}

func TestIncludeDeleted(t *testing.T) {
	out := IncludeDeleted(Predicate{"santri_id": "x"})
	assert.Equal(t, Predicate{"santri_id": "x"}, out)
	assert.NotContains(t, out, "is_deleted")

	assert.Empty(t, IncludeDeleted(nil))
}

func TestInjectDefault(t *testing.T) {
	// tanpa predicate → seluruh predicate jadi {is_deleted:false}
	assert.Equal(t, Predicate{"is_deleted": false}, injectDefault(nil))

	// predicate tanpa key is_deleted → disisipkan false
	out := injectDefault(Predicate{"name": "ahmad"})
	assert.Equal(t, false, out["is_deleted"])
	assert.Equal(t, "ahmad", out["name"])

	// intensi eksplisit caller menang
	out = injectDefault(Predicate{"is_deleted": true})
	assert.Equal(t, true, out["is_deleted"])
}
