package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// constraint denials
	ErrNoSuchSlot    = errors.New("no such slot")
	ErrWrongSigner   = errors.New("wrong signer for slot")
	ErrExhaustedSlot = errors.New("slot exhausted")

	ErrInvalidIdentifier        = errors.New("invalid identifier")
	ErrInvalidAddress           = errors.New("invalid address")
	ErrInvalidContentIdentifier = errors.New("invalid content identifier")
	ErrEmptySlots               = errors.New("at least one slot is required")
	ErrDuplicateSlot            = errors.New("duplicate slot identifier")
	ErrEmptySignature           = errors.New("signature is required")
	ErrEmptyMessage             = errors.New("message is required")
	ErrInvalidLimit             = errors.New("invalid limit")
	ErrInvalidConstraint        = errors.New("invalid constraint")
)
