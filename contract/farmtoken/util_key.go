package farmtoken

import (
	"github.com/meverselabs/meverse/common/bin"
)

var (
	tagSftName       = byte(0x01)
	tagSftSymbol     = byte(0x02)
	tagSftMinter     = byte(0x03)
	tagSftNonceCount = byte(0x04)
	tagSftAttributes = byte(0x10)
	tagSftSupply     = byte(0x11)
	tagSftBalance    = byte(0x12)
	tagSftOperator   = byte(0x13)
)

func makeNonceKey(tag byte, nonce uint64) []byte {
	bs := make([]byte, 9)
	bs[0] = tag
	copy(bs[1:], bin.Uint64Bytes(nonce))
	return bs
}
