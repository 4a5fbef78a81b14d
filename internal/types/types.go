// internal/types/types.go
package types

// EntityID — идентификатор сущности. ID только растут,
// поэтому сортировка даёт порядок добавления.
type EntityID uint64
