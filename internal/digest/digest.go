// Package digest computes a single attestation hash over a verified hand's
// verdict, reusing the narrow Keccak256 hashing utility the settlement
// contract's client expects an audit result to carry.
package digest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/zalemm/pokerauditor/internal/scoring"
)

// Attestation hashes an analysis's winners, ordered deterministically by
// PID, so two auditors that agree on the verdict produce the same digest
// regardless of map iteration order.
func Attestation(handID string, winners []scoring.Winner, errCode int) common.Hash {
	ordered := make([]scoring.Winner, len(winners))
	copy(ordered, winners)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].PID < ordered[j].PID })

	var b strings.Builder
	b.WriteString(handID)
	b.WriteByte(':')
	fmt.Fprintf(&b, "%d", errCode)
	for _, w := range ordered {
		b.WriteByte(':')
		b.WriteString(w.PID)
		b.WriteByte('=')
		fmt.Fprintf(&b, "%d", w.Hand.Score)
	}

	return crypto.Keccak256Hash([]byte(b.String()))
}
