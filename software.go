package aes

// softwareBackend implements the T-table AES round function described
// in spec.md Section 4.4: a per-direction initial AddRoundKey, Nr-1
// full rounds, and a final round using the S-box/inverse S-box
// directly instead of the Mix-table path.
type softwareBackend struct {
	forward []word
	inverse []word
	nr      int
}

func (b *softwareBackend) encrypt(dst, src []byte) {
	s := loadState(src)
	nr := b.nr
	w := b.forward

	for c := 0; c < nb; c++ {
		s[c] = addRoundKey(s[c], w[c])
	}

	for round := 1; round < nr; round++ {
		var t [4]word
		for c := 0; c < nb; c++ {
			t[c] = mixColShiftRow(c, s) ^ w[nb*round+c]
		}
		s = t
	}

	var t [4]word
	for c := 0; c < nb; c++ {
		t[c] = subBytesShiftRows(c, s) ^ w[nb*nr+c]
	}

	storeState(t, dst)
}

func (b *softwareBackend) decrypt(dst, src []byte) {
	s := loadState(src)
	nr := b.nr
	w := b.inverse

	for c := 0; c < nb; c++ {
		s[c] = addRoundKey(s[c], w[nb*nr+c])
	}

	for round := nr - 1; round >= 1; round-- {
		var t [4]word
		for c := 0; c < nb; c++ {
			t[c] = invMixColShiftRow(c, s) ^ w[nb*round+c]
		}
		s = t
	}

	var t [4]word
	for c := 0; c < nb; c++ {
		t[c] = invSubBytesShiftRows(c, s) ^ w[c]
	}

	storeState(t, dst)
}
