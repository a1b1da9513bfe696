package models

// LoginRequest proves control of an address by a signature over a login
// message that embeds the address and an issue time.
type LoginRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// Page is an offset/limit window over an address-scoped listing.
type Page struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// AgreementsResponse is a page of agreements.
type AgreementsResponse struct {
	Agreements []Agreement `json:"agreements"`
	Length     int         `json:"length"`
}

// SignaturesResponse is a page of signature packets.
type SignaturesResponse struct {
	Signatures []SignaturePacket `json:"signatures"`
	Length     int               `json:"length"`
}
