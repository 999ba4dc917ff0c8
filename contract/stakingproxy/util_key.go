package stakingproxy

var (
	tagOwner          = byte(0x01)
	tagLpFarm         = byte(0x02)
	tagStakingFarm    = byte(0x03)
	tagPair           = byte(0x04)
	tagLpToken        = byte(0x05)
	tagStakingToken   = byte(0x06)
	tagLpFarmToken    = byte(0x07)
	tagDualYieldToken = byte(0x08)
)
