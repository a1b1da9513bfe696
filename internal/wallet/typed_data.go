package wallet

import (
	"fmt"
	"math/big"

	"github.com/MKhiriev/go-agreement-keeper/models"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// TypedDataHash returns the EIP-712 digest of data.
func TypedDataHash(data models.TypedData) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(toAPITypedData(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTypedData, err)
	}
	return hash, nil
}

func toAPITypedData(data models.TypedData) apitypes.TypedData {
	types := apitypes.Types{
		"EIP712Domain": {
			{Name: "name", Type: "string"},
			{Name: "version", Type: "string"},
			{Name: "chainId", Type: "uint256"},
		},
	}
	for name, fields := range data.Types {
		converted := make([]apitypes.Type, 0, len(fields))
		for _, f := range fields {
			converted = append(converted, apitypes.Type{Name: f.Name, Type: f.Type})
		}
		types[name] = converted
	}

	return apitypes.TypedData{
		Types:       types,
		PrimaryType: data.PrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:    data.Domain.Name,
			Version: data.Domain.Version,
			ChainId: (*math.HexOrDecimal256)(big.NewInt(data.Domain.ChainID)),
		},
		Message: apitypes.TypedDataMessage(data.Message),
	}
}
