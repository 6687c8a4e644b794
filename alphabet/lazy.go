// SPDX-License-Identifier: MIT

package alphabet

import "github.com/katalvlaran/lvbio/seqview"

// AsChars returns a read-only view whose At(i) is c.ToChar(src.At(i)).
// Nothing is converted until At is called and no bounds are checked.
func (c Codec) AsChars(src seqview.Indexer[uint8]) seqview.Mapped[uint8, byte] {
	return seqview.Map[uint8, byte](src, c.ToCharFunc())
}

// AsSymbols returns a read-only view whose At(i) is c.FromChar(src.At(i)).
func (c Codec) AsSymbols(src seqview.Indexer[byte]) seqview.Mapped[byte, uint8] {
	return seqview.Map[byte, uint8](src, c.FromCharFunc())
}
