package cache

import "math/big"

// EncodeBigInt produces the Row.Value byte representation for n: a single
// sign byte (0 for zero/positive, 1 for negative) followed by n's absolute
// value in big-endian bytes.
func EncodeBigInt(n *big.Int) []byte {
	sign := byte(0)
	if n.Sign() < 0 {
		sign = 1
	}
	abs := new(big.Int).Abs(n).Bytes()
	out := make([]byte, 0, len(abs)+1)
	out = append(out, sign)
	return append(out, abs...)
}

// DecodeBigInt is the inverse of EncodeBigInt.
func DecodeBigInt(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	n := new(big.Int).SetBytes(b[1:])
	if b[0] == 1 {
		n.Neg(n)
	}
	return n
}
