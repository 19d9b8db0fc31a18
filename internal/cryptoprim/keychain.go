package cryptoprim

import "fmt"

// Keychain is a player's ordered sequence of keypairs used during a hand.
// The last keypair is the one under which the final deck is encrypted.
type Keychain []*Keypair

// Final returns the last keypair in the chain, the one used to encrypt the
// committed deck and to finish the player's own card decryptions.
func (kc Keychain) Final() (*Keypair, error) {
	if len(kc) == 0 {
		return nil, fmt.Errorf("cryptoprim: empty keychain")
	}
	return kc[len(kc)-1], nil
}

// EncryptBatch encrypts every mapping in data under the keychain's final key.
func (kc Keychain) EncryptBatch(data []string) ([]string, error) {
	key, err := kc.Final()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(data))
	for i, v := range data {
		enc, err := key.Encrypt(v)
		if err != nil {
			return nil, err
		}
		out[i] = enc
	}
	return out, nil
}

// DecryptBatch decrypts every ciphertext in data under the keychain's final key.
func (kc Keychain) DecryptBatch(data []string) ([]string, error) {
	key, err := kc.Final()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(data))
	for i, v := range data {
		dec, err := key.Decrypt(v)
		if err != nil {
			return nil, err
		}
		out[i] = dec
	}
	return out, nil
}
