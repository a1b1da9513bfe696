// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/ipfs/boxo/ipld/merkledag"
	"github.com/ipfs/boxo/ipld/unixfs"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// contentAddresser is the private implementation of [ContentAddresser].
type contentAddresser struct {
	builder cid.V1Builder
}

// NewContentAddresser constructs a [ContentAddresser] producing CIDv1
// identifiers with the dag-pb codec and a full-length SHA-256 multihash.
func NewContentAddresser() ContentAddresser {
	return &contentAddresser{
		builder: cid.V1Builder{
			Codec:    cid.DagProtobuf,
			MhType:   multihash.SHA2_256,
			MhLength: -1,
		},
	}
}

// Identify implements [ContentAddresser]. The whole document goes into a
// single leaf; no chunking is applied.
func (a *contentAddresser) Identify(data []byte) (cid.Cid, error) {
	node := merkledag.NodeWithData(unixfs.FilePBData(data, uint64(len(data))))
	if err := node.SetCidBuilder(a.builder); err != nil {
		return cid.Undef, fmt.Errorf("error setting cid builder: %w", err)
	}

	return node.Cid(), nil
}

// Canonicalize implements [ContentAddresser].
func (a *contentAddresser) Canonicalize(s string) (string, error) {
	c, err := ParseContentIdentifier(s)
	if err != nil {
		return "", err
	}

	return c.String(), nil
}

// ParseContentIdentifier decodes s and upgrades it to CIDv1, keeping the
// codec and multihash.
func ParseContentIdentifier(s string) (cid.Cid, error) {
	if s == "" {
		return cid.Undef, fmt.Errorf("%w: empty", ErrInvalidContentIdentifier)
	}

	c, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: %w", ErrInvalidContentIdentifier, err)
	}

	return cid.NewCidV1(c.Type(), c.Hash()), nil
}

// SameContent reports whether a and b name the same content. Malformed
// identifiers never match.
func SameContent(a, b string) bool {
	ca, err := ParseContentIdentifier(a)
	if err != nil {
		return false
	}
	cb, err := ParseContentIdentifier(b)
	if err != nil {
		return false
	}

	return ca.Equals(cb)
}
