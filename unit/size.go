package unit

import "fmt"

// VByte expresses a transaction size in virtual bytes. One virtual byte
// is 1/4th of a weight unit, rounded up per BIP141.
type VByte uint64

// String returns a human-readable string of the size.
func (v VByte) String() string {
	return fmt.Sprintf("%d vb", uint64(v))
}
