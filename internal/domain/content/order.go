package content

import "github.com/google/uuid"

// ValidateOrder checks a requested display order before it reaches storage.
// Position i in ids becomes display_order i+1.
func ValidateOrder(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrEmptyOrder
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return ErrDuplicateID
		}
		seen[id] = struct{}{}
	}
	return nil
}
