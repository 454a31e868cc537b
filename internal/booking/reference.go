package booking

import (
	"fmt"

	"github.com/google/uuid"
)

const referencePrefix = "GYM-"

// NewReference returns a human-shareable booking code: the GYM- prefix plus
// 8 uppercase hex characters. Uniqueness is ultimately guaranteed by the
// database constraint, not by this generator.
func NewReference() string {
	id := uuid.New()
	return fmt.Sprintf("%s%X", referencePrefix, id[:4])
}
