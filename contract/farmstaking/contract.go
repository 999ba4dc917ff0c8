package farmstaking

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
)

const (
	StateInactive      = uint8(0)
	StateActive        = uint8(1)
	StatePartialActive = uint8(2)
)

// StakingFarmContract stakes the reward token itself. Accrual is capped
// by a maximum APR and by the topped up reward reserve, leaving the
// farm pays through a two step unstake and unbond flow with a separate
// unbond position token.
type StakingFarmContract struct {
	addr   common.Address
	master common.Address
}

func (cont *StakingFarmContract) Address() common.Address {
	return cont.addr
}

func (cont *StakingFarmContract) Master() common.Address {
	return cont.master
}

func (cont *StakingFarmContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *StakingFarmContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &StakingFarmContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.EpochBlocks == 0 || data.BlocksPerYear == 0 {
		return errors.New("epoch blocks or blocks per year is 0")
	}
	if uint64(data.BoostedYieldsPercentage) > farmcore.MaxPercentage {
		return errors.Errorf("invalid boosted yields percentage %v", data.BoostedYieldsPercentage)
	}
	if data.EnergyConst+data.FarmConst == 0 {
		return errors.New("energy and farm consts are both 0")
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagStakingToken}, data.StakingToken[:])
	cc.SetContractData([]byte{tagFarmToken}, data.FarmToken[:])
	cc.SetContractData([]byte{tagUnbondToken}, data.UnbondToken[:])
	cc.SetContractData([]byte{tagEnergyFactory}, data.EnergyFactory[:])
	cc.SetContractData([]byte{tagMaxApr}, bin.Uint32Bytes(data.MaxApr))
	cc.SetContractData([]byte{tagBlocksPerYear}, bin.Uint32Bytes(data.BlocksPerYear))
	cc.SetContractData([]byte{tagMinUnbondEpochs}, bin.Uint32Bytes(data.MinUnbondEpochs))
	cc.SetContractData([]byte{tagEpochBlocks}, bin.Uint32Bytes(data.EpochBlocks))
	cc.SetContractData([]byte{tagBoostedPercentage}, bin.Uint32Bytes(data.BoostedYieldsPercentage))
	cc.SetContractData([]byte{tagEnergyConst}, bin.Uint32Bytes(data.EnergyConst))
	cc.SetContractData([]byte{tagFarmConst}, bin.Uint32Bytes(data.FarmConst))
	cc.SetContractData([]byte{tagMinWeeksToCollect}, bin.Uint32Bytes(data.MinWeeksToCollect))
	cc.SetContractData([]byte{tagMinEnergyAmount}, data.MinEnergyAmount.Bytes())
	cc.SetContractData([]byte{tagMinFarmAmount}, data.MinFarmAmount.Bytes())
	cc.SetContractData([]byte{tagState}, []byte{StateActive})
	return nil
}

func (cont *StakingFarmContract) OnReward(cc *types.ContractContext, b *types.Block, CountMap map[common.Address]uint32) (map[common.Address]*amount.Amount, error) {
	return nil, nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *StakingFarmContract) Owner(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagOwner}))
	return addr
}

func (cont *StakingFarmContract) StakingToken(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagStakingToken}))
	return addr
}

func (cont *StakingFarmContract) FarmToken(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagFarmToken}))
	return addr
}

func (cont *StakingFarmContract) UnbondToken(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagUnbondToken}))
	return addr
}

func (cont *StakingFarmContract) EnergyFactory(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagEnergyFactory}))
	return addr
}

func (cont *StakingFarmContract) MaxApr(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagMaxApr}))
}

func (cont *StakingFarmContract) BlocksPerYear(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagBlocksPerYear}))
}

func (cont *StakingFarmContract) MinUnbondEpochs(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagMinUnbondEpochs}))
}

func (cont *StakingFarmContract) RewardPerShare(cc types.ContractLoader) *big.Int {
	bs := cc.ContractData([]byte{tagRewardPerShare})
	if len(bs) == 0 {
		return big.NewInt(0)
	}
	return big.NewInt(0).SetBytes(bs)
}

func (cont *StakingFarmContract) RewardReserve(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagRewardReserve})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *StakingFarmContract) FarmTokenSupply(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagFarmTokenSupply})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *StakingFarmContract) LastRewardBlock(cc types.ContractLoader) uint32 {
	bs := cc.ContractData([]byte{tagLastRewardBlock})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

func (cont *StakingFarmContract) ProduceRewardsEnabled(cc types.ContractLoader) bool {
	bs := cc.ContractData([]byte{tagProduceRewards})
	return len(bs) > 0 && bs[0] == 1
}

func (cont *StakingFarmContract) State(cc types.ContractLoader) uint8 {
	bs := cc.ContractData([]byte{tagState})
	if len(bs) == 0 {
		return StateInactive
	}
	return bs[0]
}

func (cont *StakingFarmContract) CurrentEpoch(cc *types.ContractContext) uint32 {
	return cc.TargetHeight() / bin.Uint32(cc.ContractData([]byte{tagEpochBlocks}))
}

func (cont *StakingFarmContract) CurrentWeek(cc *types.ContractContext) uint32 {
	return farmcore.WeekOf(cont.CurrentEpoch(cc))
}

func (cont *StakingFarmContract) BoostedYieldsPercentage(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagBoostedPercentage}))
}

func (cont *StakingFarmContract) MinWeeksToCollect(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagMinWeeksToCollect}))
}

func (cont *StakingFarmContract) MinEnergyAmount(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagMinEnergyAmount}))
}

func (cont *StakingFarmContract) MinFarmAmount(cc types.ContractLoader) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagMinFarmAmount}))
}

func (cont *StakingFarmContract) TotalFarmPosition(cc types.ContractLoader, user common.Address) *amount.Amount {
	bs := cc.AccountData(user, []byte{tagTotalFarmPosition})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *StakingFarmContract) RewardsPerWeek(cc types.ContractLoader, week uint32) *amount.Amount {
	bs := cc.ContractData(makeWeekKey(tagWeekPool, week))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *StakingFarmContract) RemainingBoostedRewards(cc types.ContractLoader, week uint32) *amount.Amount {
	bs := cc.ContractData(makeWeekKey(tagWeekRemaining, week))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *StakingFarmContract) TotalEnergyForWeek(cc types.ContractLoader, week uint32) *big.Int {
	bs := cc.ContractData(makeWeekKey(tagWeekTotalEnergy, week))
	if len(bs) == 0 {
		return big.NewInt(0)
	}
	return big.NewInt(0).SetBytes(bs)
}

func (cont *StakingFarmContract) TotalFarmSupplyForWeek(cc types.ContractLoader, week uint32) *amount.Amount {
	bs := cc.ContractData(makeWeekKey(tagWeekTotalFarm, week))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *StakingFarmContract) HasClaimedBoostedRewards(cc types.ContractLoader, user common.Address, week uint32) bool {
	bs := cc.AccountData(user, makeWeekKey(tagWeekClaimed, week))
	return len(bs) > 0 && bs[0] == 1
}

func (cont *StakingFarmContract) IsProxy(cc types.ContractLoader, addr common.Address) bool {
	bs := cc.ContractData(makeAddressKey(tagProxy, addr))
	return len(bs) > 0 && bs[0] == 1
}

// CalculateRewardsForGivenPosition previews the reward an amount of the
// given position would be paid right now, accrual included.
func (cont *StakingFarmContract) CalculateRewardsForGivenPosition(cc *types.ContractContext, Amount *amount.Amount, nonce uint64) (*amount.Amount, error) {
	attrs, err := cont.loadAttributes(cc, nonce)
	if err != nil {
		return nil, err
	}
	rps := cont.pendingRewardPerShare(cc)
	reward, err := farmcore.CalculateReward(Amount, rps, attrs.RewardPerShare)
	if err != nil {
		return nil, err
	}
	return farmcore.MinAmount(reward, cont.RewardReserve(cc)), nil
}
