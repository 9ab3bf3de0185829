package lifecycle

// Predicate adalah kondisi WHERE equality sederhana (kolom → nilai),
// dipakai langsung oleh gorm lewat db.Where(map[string]any).
type Predicate map[string]any

const deletedKey = "is_deleted"

func clonePredicate(in Predicate) Predicate {
	out := make(Predicate, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

// WithoutDeleted: default sistem — exclude record yang sudah di-tombstone.
// Menerima predicate existing (boleh nil), mengembalikan predicate baru; input tidak dimutasi.
func WithoutDeleted(in Predicate) Predicate {
	out := clonePredicate(in)
	out[deletedKey] = false
	return out
}

// OnlyDeleted: hanya record yang sudah di-tombstone (list "sampah" admin).
func OnlyDeleted(in Predicate) Predicate {
	out := clonePredicate(in)
	out[deletedKey] = true
	return out
}

// IncludeDeleted: semua record tanpa memandang tombstone — tidak menambah kondisi apa pun.
func IncludeDeleted(in Predicate) Predicate {
	return clonePredicate(in)
}

// injectDefault menerapkan aturan find-many/find-one:
// - predicate nil → {is_deleted: false}
// - predicate tanpa key is_deleted → tambahkan is_deleted=false
// - predicate yang sudah menyebut is_deleted → intensi caller menang, lewat apa adanya
func injectDefault(in Predicate) Predicate {
	if in == nil {
		return Predicate{deletedKey: false}
	}
	if _, ok := in[deletedKey]; ok {
		return in
	}
	return WithoutDeleted(in)
}
