package catalog

import (
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// NewPublicID generates a public identifier for a runtime-created entity
// in the mission identifier scheme:
//
//	smi:insight.mqs/<ObjectType>/YYYYMMDDHHMMSS.ffffff.<unique>
//
// where <unique> is a short decimal component derived from a random UUID.
// Entities read from a catalog document keep their document identifiers;
// this is only for objects created after ingestion (recomputed magnitudes,
// synthetic origins).
func NewPublicID(objectType string, t time.Time) string {
	stamp := t.UTC().Format("20060102150405.000000")

	u := uuid.New()
	digits := new(big.Int).SetBytes(u[:]).String()
	if len(digits) > 6 {
		digits = digits[:6]
	}

	return fmt.Sprintf("%s/%s/%s.%s", PublicIDNamespace, objectType, stamp, digits)
}
