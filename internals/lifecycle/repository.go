package lifecycle

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository adalah satu-satunya titik intersepsi akses data untuk entity
// ber-tombstone: delete ditulis ulang jadi update, read default menyaring
// record terhapus. Kind di luar allow-list lewat tanpa perubahan perilaku.
type Repository[T Entity] struct {
	DB *gorm.DB
}

func NewRepository[T Entity](db *gorm.DB) Repository[T] {
	return Repository[T]{DB: db}
}

func (r Repository[T]) intercepted() bool {
	var zero T
	return IsTombstonedKind(zero.Kind())
}

func (r Repository[T]) where(pred Predicate) *gorm.DB {
	if r.intercepted() {
		pred = injectDefault(pred)
	}
	tx := r.DB.Model(new(T))
	if len(pred) > 0 {
		tx = tx.Where(map[string]any(pred))
	}
	return tx
}

/* ===============================
   Reads
=================================*/

// FindOne: First + default is_deleted=false kecuali caller sudah menyebut is_deleted.
func (r Repository[T]) FindOne(pred Predicate, out *T) error {
	return r.where(pred).First(out).Error
}

// FindFirst: tanpa implicit primary-key ordering.
func (r Repository[T]) FindFirst(pred Predicate, out *T) error {
	return r.where(pred).Take(out).Error
}

// FindMany menerima scope tambahan (order, limit, preload) dari caller.
func (r Repository[T]) FindMany(pred Predicate, out *[]T, scopes ...func(*gorm.DB) *gorm.DB) error {
	tx := r.where(pred)
	for _, s := range scopes {
		tx = s(tx)
	}
	return tx.Find(out).Error
}

func (r Repository[T]) Count(pred Predicate) (int64, error) {
	var n int64
	err := r.where(pred).Count(&n).Error
	return n, err
}

/* ===============================
   Writes
=================================*/

func (r Repository[T]) Create(row *T) error {
	return r.DB.Create(row).Error
}

func (r Repository[T]) Save(row *T) error {
	return r.DB.Save(row).Error
}

// Updates: partial update dengan predicate eksplisit (tanpa injeksi —
// mutasi harus menyebut target secara eksplisit).
func (r Repository[T]) Updates(pred Predicate, values map[string]any) (int64, error) {
	tx := r.DB.Model(new(T)).Where(map[string]any(pred)).Updates(values)
	return tx.RowsAffected, tx.Error
}

// Delete men-tombstone satu/lebih record yang cocok dengan pred.
// Untuk kind di luar allow-list ini jadi hard delete biasa.
// actor boleh nil — tombstone tetap jalan dengan deleted_by NULL.
func (r Repository[T]) Delete(pred Predicate, actor *uuid.UUID) (int64, error) {
	if !r.intercepted() {
		tx := r.DB.Where(map[string]any(pred)).Delete(new(T))
		return tx.RowsAffected, tx.Error
	}
	now := time.Now()
	tx := r.DB.Model(new(T)).
		Where(map[string]any(WithoutDeleted(pred))).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_at": now,
			"deleted_by": actor,
		})
	return tx.RowsAffected, tx.Error
}

// DeleteMany: alias eksplisit untuk operasi bulk; semantik sama dengan Delete.
func (r Repository[T]) DeleteMany(pred Predicate, actor *uuid.UUID) (int64, error) {
	return r.Delete(pred, actor)
}

// Restore membatalkan tombstone (hanya bermakna untuk kind ber-tombstone).
func (r Repository[T]) Restore(pred Predicate) (int64, error) {
	if !r.intercepted() {
		return 0, nil
	}
	tx := r.DB.Model(new(T)).
		Where(map[string]any(OnlyDeleted(pred))).
		Updates(map[string]any{
			"is_deleted": false,
			"deleted_at": nil,
			"deleted_by": nil,
		})
	return tx.RowsAffected, tx.Error
}
