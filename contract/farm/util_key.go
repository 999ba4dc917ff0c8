package farm

import (
	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/bin"
)

var (
	tagOwner              = byte(0x01)
	tagFarmingToken       = byte(0x02)
	tagRewardToken        = byte(0x03)
	tagFarmToken          = byte(0x04)
	tagEnergyFactory      = byte(0x05)
	tagPerBlockReward     = byte(0x06)
	tagRewardPerShare     = byte(0x07)
	tagRewardReserve      = byte(0x08)
	tagFarmTokenSupply    = byte(0x09)
	tagLastRewardBlock    = byte(0x0a)
	tagProduceRewards     = byte(0x0b)
	tagState              = byte(0x0c)
	tagEpochBlocks        = byte(0x0d)
	tagBoostedPercentage  = byte(0x0e)
	tagEnergyConst        = byte(0x0f)
	tagFarmConst          = byte(0x20)
	tagMinWeeksToCollect  = byte(0x21)
	tagMinEnergyAmount    = byte(0x22)
	tagMinFarmAmount      = byte(0x23)
	tagWeekPool           = byte(0x30)
	tagWeekRemaining      = byte(0x31)
	tagWeekTotalEnergy    = byte(0x32)
	tagWeekTotalFarm      = byte(0x33)
	tagBlacklist          = byte(0x34)
	tagRewardLocker       = byte(0x35)
	tagMigrationEpoch     = byte(0x36)
	tagTotalFarmPosition  = byte(0x10)
	tagWeekClaimed        = byte(0x11)
	tagOnBehalfWhitelist  = byte(0x12)
)

func makeWeekKey(tag byte, week uint32) []byte {
	bs := make([]byte, 5)
	bs[0] = tag
	copy(bs[1:], bin.Uint32Bytes(week))
	return bs
}

func makeAddressKey(tag byte, addr common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tag
	copy(bs[1:], addr[:])
	return bs
}
