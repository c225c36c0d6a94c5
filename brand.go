package fraci

// StringKey is a character-string fractional index. Brand is a phantom
// type parameter: it carries no runtime value and costs nothing at
// runtime (the underlying representation is a plain string), but it lets
// the compiler refuse to mix keys generated for different columns —
// `StringKey[PlaylistTrackBrand]` and `StringKey[KanbanCardBrand]` are
// distinct types even though both are strings underneath.
type StringKey[Brand any] string

// BinaryKey is a byte-string fractional index, branded the same way as
// StringKey.
type BinaryKey[Brand any] []byte

// String returns the raw character representation.
func (k StringKey[Brand]) String() string { return string(k) }

// Bytes returns the raw byte representation.
func (k BinaryKey[Brand]) Bytes() []byte { return []byte(k) }
