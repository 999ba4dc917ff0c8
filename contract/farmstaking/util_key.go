package farmstaking

import (
	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/bin"
)

var (
	tagOwner             = byte(0x01)
	tagStakingToken      = byte(0x02)
	tagFarmToken         = byte(0x03)
	tagUnbondToken       = byte(0x04)
	tagEnergyFactory     = byte(0x05)
	tagMaxApr            = byte(0x06)
	tagBlocksPerYear     = byte(0x07)
	tagMinUnbondEpochs   = byte(0x08)
	tagRewardPerShare    = byte(0x09)
	tagRewardReserve     = byte(0x0a)
	tagFarmTokenSupply   = byte(0x0b)
	tagLastRewardBlock   = byte(0x0c)
	tagProduceRewards    = byte(0x0d)
	tagState             = byte(0x0e)
	tagEpochBlocks       = byte(0x0f)
	tagBoostedPercentage = byte(0x20)
	tagEnergyConst       = byte(0x21)
	tagFarmConst         = byte(0x22)
	tagMinWeeksToCollect = byte(0x23)
	tagMinEnergyAmount   = byte(0x24)
	tagMinFarmAmount     = byte(0x25)
	tagProxy             = byte(0x26)
	tagWeekPool          = byte(0x30)
	tagWeekRemaining     = byte(0x31)
	tagWeekTotalEnergy   = byte(0x32)
	tagWeekTotalFarm     = byte(0x33)
	tagTotalFarmPosition = byte(0x10)
	tagWeekClaimed       = byte(0x11)
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
