// Package sharecode generates the random identifiers embedded in public
// share URLs. A share hash is a bearer capability, so it must be
// unguessable.
package sharecode

import (
	"crypto/rand"
	"math/big"
)

// Length is the number of characters in a generated share hash. With a
// 62-symbol alphabet this gives over 8*10^17 possible values, so
// collisions are negligible; the unique index on the stored hash is the
// backstop.
const Length = 10

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// New returns a random alphanumeric string of n characters.
func New(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}
