package lifecycle

import (
	"time"

	"github.com/google/uuid"
)

// TombstoneFields di-embed oleh semua model yang ikut kebijakan soft-delete.
// Invariant: IsDeleted=true selalu disertai DeletedAt non-null.
// DeletedBy boleh NULL (request tanpa identitas tetap boleh menghapus).
type TombstoneFields struct {
	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false;index" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	DeletedBy *uuid.UUID `gorm:"column:deleted_by;type:uuid" json:"deleted_by,omitempty"`
}

// MarkDeleted men-tombstone record di memori. Idempotent di level data:
// panggilan kedua hanya menyegarkan timestamp, status tetap terhapus.
func (t *TombstoneFields) MarkDeleted(at time.Time, by *uuid.UUID) {
	t.IsDeleted = true
	t.DeletedAt = &at
	t.DeletedBy = by
}

// Restore membatalkan tombstone (khusus admin).
func (t *TombstoneFields) Restore() {
	t.IsDeleted = false
	t.DeletedAt = nil
	t.DeletedBy = nil
}

// Entity: dipenuhi semua model yang diakses lewat Repository.
// Kind() mengembalikan nama entity-kind untuk dicek terhadap allow-list.
type Entity interface {
	Kind() string
}

// Daftar entity-kind yang ikut kebijakan soft-delete.
// Konstanta konfigurasi, bukan data — kind di luar daftar ini lewat tanpa intersepsi.
var tombstonedKinds = map[string]struct{}{
	"user":                {},
	"santri":              {},
	"hafalan_record":      {},
	"attendance_record":   {},
	"grade_record":        {},
	"donation":            {},
	"transaction":         {},
	"article":             {},
}

func IsTombstonedKind(kind string) bool {
	_, ok := tombstonedKinds[kind]
	return ok
}

// TombstonedKinds mengembalikan salinan daftar (untuk introspeksi/debug endpoint).
func TombstonedKinds() []string {
	out := make([]string, 0, len(tombstonedKinds))
	for k := range tombstonedKinds {
		out = append(out, k)
	}
	return out
}
