package response

// ErrCode is a typed code identifying a load diagnostic or failure.
type ErrCode string

const (
	// ─── Sources ───────────────────────────────────────────────────────
	ErrSourceNotFound ErrCode = "SOURCE_NOT_FOUND"
	ErrSourceRead     ErrCode = "SOURCE_READ_ERROR"
	ErrFieldCount     ErrCode = "FIELD_COUNT_MISMATCH"

	// ─── Majors ────────────────────────────────────────────────────────
	ErrInvalidKind ErrCode = "INVALID_REQUIREMENT_KIND"

	// ─── References ────────────────────────────────────────────────────
	ErrUnknownMajor      ErrCode = "UNKNOWN_MAJOR"
	ErrUnknownStudent    ErrCode = "UNKNOWN_STUDENT"
	ErrUnknownInstructor ErrCode = "UNKNOWN_INSTRUCTOR"

	// ─── Configuration ─────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"

	// ─── Internal ──────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Sources ───────────────────────────────────────────────────────
	case ErrSourceNotFound:
		return "Source file not found; phase skipped."
	case ErrSourceRead:
		return "Source file could not be read."
	case ErrFieldCount:
		return "Line has the wrong number of fields."

	// ─── Majors ────────────────────────────────────────────────────────
	case ErrInvalidKind:
		return "Requirement flag must be R or E."

	// ─── References ────────────────────────────────────────────────────
	case ErrUnknownMajor:
		return "Student references an unknown major."
	case ErrUnknownStudent:
		return "Found grade for unknown student."
	case ErrUnknownInstructor:
		return "Found grade for unknown instructor."

	// ─── Configuration ─────────────────────────────────────────────────
	case ErrValidation:
		return "Configuration is invalid."

	// ─── Internal ──────────────────────────────────────────────────────
	case ErrInternal:
		return "Internal error."
	default:
		return "Unexpected error."
	}
}

// IsFatal reports whether code stops the remaining load phases.
func IsFatal(code ErrCode) bool {
	switch code {
	case ErrFieldCount, ErrInvalidKind, ErrSourceRead, ErrInternal:
		return true
	default:
		return false
	}
}
