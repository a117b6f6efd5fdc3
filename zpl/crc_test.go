package zpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumVectors(t *testing.T) {
	check := []byte("123456789")

	// same register, same polynomial; only the initial value differs
	assert.Equal(t, uint16(0x29B1), crc16(0xFFFF, check))
	assert.Equal(t, uint16(0x31C3), Checksum(check))

	assert.Equal(t, uint16(0), Checksum(nil))
	assert.Equal(t, uint16(0xE685), Checksum([]byte("AAAAAA==")))
}

// checksumBitwise is the bit-serial form of the same CRC.
func checksumBitwise(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		for i := 0; i < 8; i++ {
			bit := (b>>(7-i))&1 == 1
			top := crc&0x8000 != 0
			crc <<= 1
			if top != bit {
				crc ^= crcPoly
			}
		}
	}
	return crc
}

func TestChecksumMatchesBitwise(t *testing.T) {
	inputs := []string{"", "A", "eJzLSM3JyVcozy/KSQEAGgQEXQ==", "/w==", "sKA="}
	for _, in := range inputs {
		assert.Equalf(t, checksumBitwise([]byte(in)), Checksum([]byte(in)), "input %q", in)
	}
}
