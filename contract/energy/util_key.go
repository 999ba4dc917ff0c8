package energy

var (
	tagLockToken      = byte(0x01)
	tagEpochBlocks    = byte(0x02)
	tagMaxLockEpochs  = byte(0x03)
	tagTotalLocked    = byte(0x04)
	tagWeightedUnlock = byte(0x05)
	tagLockedAmount   = byte(0x10)
	tagUnlockEpoch    = byte(0x11)
)
