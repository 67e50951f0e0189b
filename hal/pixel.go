package hal

// rgb565 packs 8-bit channels by truncating the low bits.
func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgb888From565 expands a packed pixel so that full channels map back to 255.
func rgb888From565(p uint16) (r, g, b uint8) {
	r5, g6, b5 := uint32(p>>11)&0x1F, uint32(p>>5)&0x3F, uint32(p)&0x1F
	return uint8(r5 * 255 / 31), uint8(g6 * 255 / 63), uint8(b5 * 255 / 31)
}
