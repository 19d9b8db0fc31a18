// Package cryptoprim implements the external crypto primitive of an SRA-style
// commutative-encryption mental poker deck: a single value encrypted under
// one keypair, with E_a(E_b(x)) = E_b(E_a(x)) and D_a(E_a(x)) = x.
package cryptoprim

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultPrimeHex is the shared modulus used when no prime is supplied,
// carried over from the reference mental-poker deployment this protocol was
// distilled from.
const DefaultPrimeHex = "C7970CEDCC5226685694605929849D3D"

// Keypair is one player's commutative SRA keypair: ciphertext = plaintext^Enc
// mod Prime, plaintext = ciphertext^Dec mod Prime.
type Keypair struct {
	Enc   *big.Int
	Dec   *big.Int
	Prime *big.Int
}

// DefaultPrime parses DefaultPrimeHex.
func DefaultPrime() (*big.Int, error) {
	prime, ok := new(big.Int).SetString(DefaultPrimeHex, 16)
	if !ok {
		return nil, fmt.Errorf("cryptoprim: failed to parse default prime")
	}
	return prime, nil
}

// GenerateKeypair generates a fresh keypair against the default shared prime.
func GenerateKeypair() (*Keypair, error) {
	prime, err := DefaultPrime()
	if err != nil {
		return nil, err
	}
	return GenerateKeypairWithPrime(prime)
}

// GenerateKeypairWithPrime generates a fresh keypair under a given prime.
func GenerateKeypairWithPrime(prime *big.Int) (*Keypair, error) {
	enc, err := randomCoprimeKey(prime)
	if err != nil {
		return nil, fmt.Errorf("cryptoprim: generate encryption key: %w", err)
	}

	phi := new(big.Int).Sub(prime, big.NewInt(1))
	dec := new(big.Int).ModInverse(enc, phi)
	if dec == nil {
		return nil, fmt.Errorf("cryptoprim: failed to compute modular inverse")
	}

	return &Keypair{Enc: enc, Dec: dec, Prime: prime}, nil
}

func randomCoprimeKey(prime *big.Int) (*big.Int, error) {
	phi := new(big.Int).Sub(prime, big.NewInt(1))
	const maxAttempts = 1000

	for i := 0; i < maxAttempts; i++ {
		key, err := rand.Int(rand.Reader, new(big.Int).Sub(prime, big.NewInt(2)))
		if err != nil {
			return nil, err
		}
		key.Add(key, big.NewInt(2))

		gcd := new(big.Int).GCD(nil, nil, key, phi)
		if gcd.Cmp(big.NewInt(1)) == 0 {
			return key, nil
		}
	}

	return nil, fmt.Errorf("no coprime key found after %d attempts", maxAttempts)
}

// Encrypt raises the decimal-string-encoded residue to the Enc power mod Prime.
func (k *Keypair) Encrypt(mapping string) (string, error) {
	value, ok := new(big.Int).SetString(mapping, 10)
	if !ok {
		return "", fmt.Errorf("cryptoprim: invalid mapping %q", mapping)
	}
	return new(big.Int).Exp(value, k.Enc, k.Prime).String(), nil
}

// Decrypt raises the decimal-string-encoded residue to the Dec power mod Prime.
func (k *Keypair) Decrypt(mapping string) (string, error) {
	value, ok := new(big.Int).SetString(mapping, 10)
	if !ok {
		return "", fmt.Errorf("cryptoprim: invalid mapping %q", mapping)
	}
	return new(big.Int).Exp(value, k.Dec, k.Prime).String(), nil
}

// Validate checks Enc*Dec ≡ 1 (mod Prime-1).
func (k *Keypair) Validate() error {
	if k.Enc == nil || k.Dec == nil || k.Prime == nil {
		return fmt.Errorf("cryptoprim: keypair not initialized")
	}
	phi := new(big.Int).Sub(k.Prime, big.NewInt(1))
	product := new(big.Int).Mod(new(big.Int).Mul(k.Enc, k.Dec), phi)
	if product.Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("cryptoprim: invalid keypair: enc*dec != 1 mod (prime-1)")
	}
	return nil
}

// ParsePrimeHex parses a hex-encoded shared prime, as configured via
// SharedPrimeHex, the same way DefaultPrime parses DefaultPrimeHex.
func ParsePrimeHex(hex string) (*big.Int, error) {
	prime, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, fmt.Errorf("cryptoprim: failed to parse shared prime")
	}
	return prime, nil
}

// ValidateSharedPrime checks that the keypair's modulus matches a deployment's
// configured shared prime, catching a transcript generated under a different
// deployment's modulus before any decryption arithmetic runs against it.
func (k *Keypair) ValidateSharedPrime(prime *big.Int) error {
	if k.Prime.Cmp(prime) != 0 {
		return fmt.Errorf("cryptoprim: keypair prime does not match configured shared prime")
	}
	return nil
}

// Clone returns a deep copy of the keypair.
func (k *Keypair) Clone() *Keypair {
	return &Keypair{
		Enc:   new(big.Int).Set(k.Enc),
		Dec:   new(big.Int).Set(k.Dec),
		Prime: new(big.Int).Set(k.Prime),
	}
}
