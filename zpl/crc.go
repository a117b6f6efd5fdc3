package zpl

const crcPoly = 0x1021

var crcTable = func() (t [256]uint16) {
	for i := range t {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPoly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}()

// Checksum is the CRC-16 a printer expects after a B64/Z64 field: polynomial
// 0x1021, MSB first, initial value 0, no final XOR.
func Checksum(data []byte) uint16 {
	return crc16(0x0000, data)
}

func crc16(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc = crc<<8 ^ crcTable[byte(crc>>8)^b]
	}
	return crc
}
