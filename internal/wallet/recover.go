package wallet

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const loginMessagePrefix = "AgreementKeeper login"

// LoginMessage builds the message a client signs to obtain a session.
func LoginMessage(address string, issued time.Time) string {
	return fmt.Sprintf("%s\naddress: %s\nissued: %s", loginMessagePrefix, address, issued.UTC().Format(time.RFC3339))
}

// ParseLoginMessage extracts the address and issue time from a message built
// by [LoginMessage].
func ParseLoginMessage(message string) (string, time.Time, error) {
	lines := strings.Split(message, "\n")
	if len(lines) != 3 || lines[0] != loginMessagePrefix {
		return "", time.Time{}, fmt.Errorf("malformed login message")
	}

	address, ok := strings.CutPrefix(lines[1], "address: ")
	if !ok {
		return "", time.Time{}, fmt.Errorf("malformed login message: no address")
	}
	issuedText, ok := strings.CutPrefix(lines[2], "issued: ")
	if !ok {
		return "", time.Time{}, fmt.Errorf("malformed login message: no issue time")
	}
	issued, err := time.Parse(time.RFC3339, issuedText)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("malformed login message: %w", err)
	}

	return address, issued, nil
}

// RecoverPersonal returns the address that produced signature over the
// personal-message form of message.
func RecoverPersonal(message []byte, signature []byte) (string, error) {
	if len(signature) != crypto.SignatureLength {
		return "", fmt.Errorf("%w: length %d", ErrInvalidSignature, len(signature))
	}

	sig := make([]byte, len(signature))
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

// VerifyPersonal checks that hexSignature over message was made by address.
func VerifyPersonal(address, message, hexSignature string) error {
	signature, err := hexutil.Decode(hexSignature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	recovered, err := RecoverPersonal([]byte(message), signature)
	if err != nil {
		return err
	}
	if !common.IsHexAddress(address) || common.HexToAddress(address) != common.HexToAddress(recovered) {
		return ErrSignerMismatch
	}
	return nil
}
