package farm

import (
	"bytes"
	"math/big"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
)

// Farm states. PartialActive keeps claim and exit open while rejecting
// new deposits.
const (
	StateInactive      = uint8(0)
	StateActive        = uint8(1)
	StatePartialActive = uint8(2)
)

// FarmContract distributes the reward token across deposited farming
// tokens by a scaled reward per share ledger. Positions live as semi
// fungible tokens minted on the configured farm token contract, a
// configurable cut of every accrual feeds weekly boosted pools weighed
// by locked energy.
type FarmContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FarmContract) Address() common.Address {
	return cont.addr
}

func (cont *FarmContract) Master() common.Address {
	return cont.master
}

func (cont *FarmContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *FarmContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FarmContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if err := validateConstruction(data); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagFarmingToken}, data.FarmingToken[:])
	cc.SetContractData([]byte{tagRewardToken}, data.RewardToken[:])
	cc.SetContractData([]byte{tagFarmToken}, data.FarmToken[:])
	cc.SetContractData([]byte{tagEnergyFactory}, data.EnergyFactory[:])
	cc.SetContractData([]byte{tagPerBlockReward}, data.PerBlockReward.Bytes())
	cc.SetContractData([]byte{tagEpochBlocks}, bin.Uint32Bytes(data.EpochBlocks))
	cc.SetContractData([]byte{tagBoostedPercentage}, bin.Uint32Bytes(data.BoostedYieldsPercentage))
	cc.SetContractData([]byte{tagEnergyConst}, bin.Uint32Bytes(data.EnergyConst))
	cc.SetContractData([]byte{tagFarmConst}, bin.Uint32Bytes(data.FarmConst))
	cc.SetContractData([]byte{tagMinWeeksToCollect}, bin.Uint32Bytes(data.MinWeeksToCollect))
	cc.SetContractData([]byte{tagMinEnergyAmount}, data.MinEnergyAmount.Bytes())
	cc.SetContractData([]byte{tagMinFarmAmount}, data.MinFarmAmount.Bytes())
	if data.RewardLocker != (common.Address{}) {
		cc.SetContractData([]byte{tagRewardLocker}, data.RewardLocker[:])
		cc.SetContractData([]byte{tagMigrationEpoch}, bin.Uint32Bytes(data.MigrationEpoch))
	}
	cc.SetContractData([]byte{tagState}, []byte{StateActive})
	return nil
}

func (cont *FarmContract) OnReward(cc *types.ContractContext, b *types.Block, CountMap map[common.Address]uint32) (map[common.Address]*amount.Amount, error) {
	return nil, nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *FarmContract) Owner(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagOwner}))
	return addr
}

func (cont *FarmContract) FarmingToken(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagFarmingToken}))
	return addr
}

func (cont *FarmContract) RewardToken(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagRewardToken}))
	return addr
}

func (cont *FarmContract) FarmToken(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagFarmToken}))
	return addr
}

func (cont *FarmContract) EnergyFactory(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagEnergyFactory}))
	return addr
}

func (cont *FarmContract) RewardLocker(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagRewardLocker}))
	return addr
}

func (cont *FarmContract) MigrationEpoch(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagMigrationEpoch})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

func (cont *FarmContract) PerBlockRewardAmount(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagPerBlockReward})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) RewardPerShare(cc types.ContractLoader) *big.Int {
	bs := cc.ContractData([]byte{tagRewardPerShare})
	if len(bs) == 0 {
		return big.NewInt(0)
	}
	return big.NewInt(0).SetBytes(bs)
}

func (cont *FarmContract) RewardReserve(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagRewardReserve})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) FarmTokenSupply(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagFarmTokenSupply})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) LastRewardBlock(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagLastRewardBlock})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

func (cont *FarmContract) ProduceRewardsEnabled(cc types.ContractLoader) bool {
	bs := cc.ContractData([]byte{tagProduceRewards})
	return len(bs) > 0 && bs[0] == 1
}

func (cont *FarmContract) State(cc types.ContractLoader) uint8 {
	bs := cc.ContractData([]byte{tagState})
	if len(bs) == 0 {
		return StateInactive
	}
	return bs[0]
}

func (cont *FarmContract) CurrentEpoch(cc *types.ContractContext) uint32 {
	return cc.TargetHeight() / bin.Uint32(cc.ContractData([]byte{tagEpochBlocks}))
}

func (cont *FarmContract) CurrentWeek(cc *types.ContractContext) uint32 {
	return farmcore.WeekOf(cont.CurrentEpoch(cc))
}

func (cont *FarmContract) BoostedYieldsPercentage(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagBoostedPercentage}))
}

func (cont *FarmContract) MinWeeksToCollect(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagMinWeeksToCollect}))
}

func (cont *FarmContract) MinEnergyAmount(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagMinEnergyAmount}))
}

func (cont *FarmContract) MinFarmAmount(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagMinFarmAmount}))
}

func (cont *FarmContract) TotalFarmPosition(cc types.ContractLoader, user common.Address) *amount.Amount {
	bs := cc.AccountData(user, []byte{tagTotalFarmPosition})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) RewardsPerWeek(cc types.ContractLoader, week uint32) *amount.Amount {
	bs := cc.ContractData(makeWeekKey(tagWeekPool, week))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) RemainingBoostedRewards(cc types.ContractLoader, week uint32) *amount.Amount {
	bs := cc.ContractData(makeWeekKey(tagWeekRemaining, week))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) TotalEnergyForWeek(cc types.ContractLoader, week uint32) *big.Int {
	bs := cc.ContractData(makeWeekKey(tagWeekTotalEnergy, week))
	if len(bs) == 0 {
		return big.NewInt(0)
	}
	return big.NewInt(0).SetBytes(bs)
}

func (cont *FarmContract) TotalFarmSupplyForWeek(cc types.ContractLoader, week uint32) *amount.Amount {
	bs := cc.ContractData(makeWeekKey(tagWeekTotalFarm, week))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmContract) HasClaimedBoostedRewards(cc types.ContractLoader, user common.Address, week uint32) bool {
	bs := cc.AccountData(user, makeWeekKey(tagWeekClaimed, week))
	return len(bs) > 0 && bs[0] == 1
}

func (cont *FarmContract) IsWhitelistedOnBehalf(cc types.ContractLoader, user common.Address, caller common.Address) bool {
	bs := cc.AccountData(user, makeAddressKey(tagOnBehalfWhitelist, caller))
	return len(bs) > 0 && bs[0] == 1
}

func (cont *FarmContract) IsBlacklisted(cc types.ContractLoader, caller common.Address) bool {
	bs := cc.ContractData(makeAddressKey(tagBlacklist, caller))
	return len(bs) > 0 && bs[0] == 1
}

// CalculateRewardsForGivenPosition previews the base reward an amount
// of the given position would be paid right now, accrual included.
func (cont *FarmContract) CalculateRewardsForGivenPosition(cc *types.ContractContext, Amount *amount.Amount, nonce uint64) (*amount.Amount, error) {
	attrs, err := cont.loadAttributes(cc, nonce)
	if err != nil {
		return nil, err
	}
	rps := cont.pendingRewardPerShare(cc)
	reward, err := farmcore.CalculateReward(Amount, rps, attrs.RewardPerShare)
	if err != nil {
		return nil, err
	}
	return farmcore.MinAmount(reward, cont.pendingRewardReserve(cc)), nil
}
