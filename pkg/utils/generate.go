package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== INVOICE NUMBER ====================

// GenerateInvoiceNumber returns the first 8 characters of a random UUID,
// upper-cased. Uniqueness is left to the invoices.invoice_number constraint.
func GenerateInvoiceNumber() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
