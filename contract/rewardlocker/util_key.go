package rewardlocker

import "github.com/meverselabs/meverse/common"

var (
	tagOwner        = byte(0x01)
	tagRewardToken  = byte(0x02)
	tagEpochBlocks  = byte(0x03)
	tagLockEpochs   = byte(0x04)
	tagFarm         = byte(0x05)
	tagLockedAmount = byte(0x10)
	tagUnlockEpoch  = byte(0x11)
)

func makeAddressKey(tag byte, addr common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tag
	copy(bs[1:], addr[:])
	return bs
}
