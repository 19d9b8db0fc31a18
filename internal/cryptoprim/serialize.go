package cryptoprim

import (
	"fmt"
	"math/big"
)

// SerializedKeypair is the wire format for a Keypair.
type SerializedKeypair struct {
	Enc   string `json:"enc"`
	Dec   string `json:"dec"`
	Prime string `json:"prime"`
}

// Serialize converts a Keypair to its hex wire format.
func (k *Keypair) Serialize() SerializedKeypair {
	return SerializedKeypair{
		Enc:   k.Enc.Text(16),
		Dec:   k.Dec.Text(16),
		Prime: k.Prime.Text(16),
	}
}

// DeserializeKeypair parses a SerializedKeypair back into a Keypair.
func DeserializeKeypair(sk SerializedKeypair) (*Keypair, error) {
	enc := new(big.Int)
	if _, ok := enc.SetString(sk.Enc, 16); !ok {
		return nil, fmt.Errorf("cryptoprim: invalid enc key format")
	}
	dec := new(big.Int)
	if _, ok := dec.SetString(sk.Dec, 16); !ok {
		return nil, fmt.Errorf("cryptoprim: invalid dec key format")
	}
	prime := new(big.Int)
	if _, ok := prime.SetString(sk.Prime, 16); !ok {
		return nil, fmt.Errorf("cryptoprim: invalid prime format")
	}
	return &Keypair{Enc: enc, Dec: dec, Prime: prime}, nil
}

// SerializeChain converts a Keychain to its wire format, in order.
func SerializeChain(kc Keychain) []SerializedKeypair {
	out := make([]SerializedKeypair, len(kc))
	for i, k := range kc {
		out[i] = k.Serialize()
	}
	return out
}

// DeserializeChain parses a wire-format keychain back in order.
func DeserializeChain(sks []SerializedKeypair) (Keychain, error) {
	out := make(Keychain, len(sks))
	for i, sk := range sks {
		k, err := DeserializeKeypair(sk)
		if err != nil {
			return nil, fmt.Errorf("cryptoprim: keychain entry %d: %w", i, err)
		}
		out[i] = k
	}
	return out, nil
}
