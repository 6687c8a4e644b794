// SPDX-License-Identifier: MIT

package alphabet

// Letters of each alphabet, indexed by code.
const (
	dnaLetters      = "ACGT"
	dnaNLetters     = "ACGTN"
	dnaIUPACLetters = "=ACMGRSVTWYHKDBN"
	proteinLetters  = "ACDEFGHIKLMNOPQRSTVWYBZX"
)

// unmappedChar is what toChar holds for codes >= SymbolCount.
const unmappedChar = '?'

// table holds the full byte<->code mapping of one alphabet. Both directions
// have 256 entries so a lookup indexed by any uint8 never goes out of range.
type table struct {
	kind     Kind
	letters  string
	sentinel uint8
	toChar   [256]byte
	fromChar [256]uint8
	member   [256]bool
}

var tables = [...]table{
	DNA:      buildTable(DNA, dnaLetters, 0),
	DNAN:     buildTable(DNAN, dnaNLetters, 4),
	DNAIUPAC: buildTable(DNAIUPAC, dnaIUPACLetters, 15),
	Protein:  buildTable(Protein, proteinLetters, 23),
}

// buildTable fills both directions. Lowercase forms of letters decode to the
// same code as the uppercase letter; every other byte decodes to sentinel.
func buildTable(k Kind, letters string, sentinel uint8) table {
	t := table{kind: k, letters: letters, sentinel: sentinel}
	for i := range t.toChar {
		t.toChar[i] = unmappedChar
		t.fromChar[i] = sentinel
	}
	for code := 0; code < len(letters); code++ {
		ch := letters[code]
		t.toChar[code] = ch
		t.fromChar[ch] = uint8(code)
		t.member[ch] = true
		if ch >= 'A' && ch <= 'Z' {
			t.fromChar[ch+('a'-'A')] = uint8(code)
			t.member[ch+('a'-'A')] = true
		}
	}

	return t
}
