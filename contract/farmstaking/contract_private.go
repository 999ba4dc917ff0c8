package farmstaking

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
)

// generateAggregatedRewards accrues up to the current block. Accrual is
// the APR bound on the staked supply and never exceeds what is left in
// the reserve, the reserve itself is debited at payout only.
func (cont *StakingFarmContract) generateAggregatedRewards(cc *types.ContractContext) error {
	lastBlock := cont.LastRewardBlock(cc)
	current := cc.TargetHeight()
	if current <= lastBlock {
		return nil
	}
	cc.SetContractData([]byte{tagLastRewardBlock}, bin.Uint32Bytes(current))
	if !cont.ProduceRewardsEnabled(cc) {
		return nil
	}
	supply := cont.FarmTokenSupply(cc)
	if supply.IsZero() {
		return nil
	}

	toDistribute := farmcore.AprBoundedReward(supply, uint64(cont.MaxApr(cc)), current-lastBlock, cont.BlocksPerYear(cc))
	toDistribute = farmcore.MinAmount(toDistribute, cont.RewardReserve(cc))
	if !toDistribute.IsPlus() {
		return nil
	}
	boostedCut := toDistribute.MulC(int64(cont.BoostedYieldsPercentage(cc))).DivC(int64(farmcore.MaxPercentage))
	base := toDistribute.Sub(boostedCut)

	rps := cont.RewardPerShare(cc)
	rps.Add(rps, farmcore.RewardPerShareIncrease(base, supply))
	cc.SetContractData([]byte{tagRewardPerShare}, rps.Bytes())

	if boostedCut.IsPlus() {
		week := cont.CurrentWeek(cc)
		cc.SetContractData(makeWeekKey(tagWeekPool, week), cont.RewardsPerWeek(cc, week).Add(boostedCut).Bytes())
		cc.SetContractData(makeWeekKey(tagWeekRemaining, week), cont.RemainingBoostedRewards(cc, week).Add(boostedCut).Bytes())
		if err := cont.snapshotWeek(cc, week, supply); err != nil {
			return err
		}
	}
	return nil
}

func (cont *StakingFarmContract) snapshotWeek(cc *types.ContractContext, week uint32, supply *amount.Amount) error {
	if len(cc.ContractData(makeWeekKey(tagWeekTotalFarm, week))) > 0 {
		return nil
	}
	ins, err := cc.Exec(cc, cont.EnergyFactory(cc), "GetTotalEnergy", []interface{}{})
	if err != nil {
		return err
	}
	totalEnergy, ok := ins[0].(*big.Int)
	if !ok {
		return errors.New("total energy is not big int")
	}
	cc.SetContractData(makeWeekKey(tagWeekTotalEnergy, week), totalEnergy.Bytes())
	cc.SetContractData(makeWeekKey(tagWeekTotalFarm, week), supply.Bytes())
	return nil
}

func (cont *StakingFarmContract) pendingRewardPerShare(cc *types.ContractContext) *big.Int {
	rps := cont.RewardPerShare(cc)
	lastBlock := cont.LastRewardBlock(cc)
	current := cc.TargetHeight()
	if current <= lastBlock || !cont.ProduceRewardsEnabled(cc) {
		return rps
	}
	supply := cont.FarmTokenSupply(cc)
	if supply.IsZero() {
		return rps
	}
	toDistribute := farmcore.AprBoundedReward(supply, uint64(cont.MaxApr(cc)), current-lastBlock, cont.BlocksPerYear(cc))
	toDistribute = farmcore.MinAmount(toDistribute, cont.RewardReserve(cc))
	boostedCut := toDistribute.MulC(int64(cont.BoostedYieldsPercentage(cc))).DivC(int64(farmcore.MaxPercentage))
	return rps.Add(rps, farmcore.RewardPerShareIncrease(toDistribute.Sub(boostedCut), supply))
}

// payReward clamps to the reserve, debits it and transfers topped up
// staking tokens out.
func (cont *StakingFarmContract) payReward(cc *types.ContractContext, to common.Address, reward *amount.Amount) (*amount.Amount, error) {
	paid, err := cont.debitReward(cc, reward)
	if err != nil {
		return nil, err
	}
	if !paid.IsPlus() {
		return paid, nil
	}
	if _, err := cc.Exec(cc, cont.StakingToken(cc), "Transfer", []interface{}{to, paid}); err != nil {
		return nil, err
	}
	return paid, nil
}

func (cont *StakingFarmContract) debitReward(cc *types.ContractContext, reward *amount.Amount) (*amount.Amount, error) {
	reserve := cont.RewardReserve(cc)
	paid := farmcore.MinAmount(reward, reserve)
	if !paid.IsPlus() {
		return amount.NewAmount(0, 0), nil
	}
	cc.SetContractData([]byte{tagRewardReserve}, reserve.Sub(paid).Bytes())
	return paid, nil
}

func (cont *StakingFarmContract) loadAttributes(cc *types.ContractContext, nonce uint64) (*farmcore.FarmTokenAttributes, error) {
	ins, err := cc.Exec(cc, cont.FarmToken(cc), "Attributes", []interface{}{nonce})
	if err != nil {
		return nil, err
	}
	bs, ok := ins[0].([]byte)
	if !ok {
		return nil, errors.New("attributes is not bytes")
	}
	return farmcore.FarmTokenAttributesFromBytes(bs)
}

func (cont *StakingFarmContract) mintPosition(cc *types.ContractContext, to common.Address, attrs *farmcore.FarmTokenAttributes) (uint64, error) {
	ins, err := cc.Exec(cc, cont.FarmToken(cc), "Mint", []interface{}{to, attrs.CurrentFarmAmount, attrs.Bytes()})
	if err != nil {
		return 0, err
	}
	nonce, ok := ins[0].(uint64)
	if !ok {
		return 0, errors.New("nonce is not uint64")
	}
	return nonce, nil
}

func (cont *StakingFarmContract) burnPosition(cc *types.ContractContext, from common.Address, nonce uint64, am *amount.Amount) error {
	_, err := cc.Exec(cc, cont.FarmToken(cc), "Burn", []interface{}{from, nonce, am})
	return err
}

// consumePosition burns am of nonce held by holder and returns the
// slice taken out of it.
func (cont *StakingFarmContract) consumePosition(cc *types.ContractContext, holder common.Address, nonce uint64, am *amount.Amount) (*farmcore.PositionSlice, error) {
	attrs, err := cont.loadAttributes(cc, nonce)
	if err != nil {
		return nil, err
	}
	sl, err := attrs.Slice(am)
	if err != nil {
		return nil, err
	}
	if err := cont.burnPosition(cc, holder, nonce, am); err != nil {
		return nil, err
	}
	return sl, nil
}

func (cont *StakingFarmContract) addFarmTokenSupply(cc *types.ContractContext, am *amount.Amount) {
	cc.SetContractData([]byte{tagFarmTokenSupply}, cont.FarmTokenSupply(cc).Add(am).Bytes())
}

func (cont *StakingFarmContract) subFarmTokenSupply(cc *types.ContractContext, am *amount.Amount) error {
	supply := cont.FarmTokenSupply(cc)
	if supply.Less(am) {
		return errors.New("farm token supply underflow")
	}
	cc.SetContractData([]byte{tagFarmTokenSupply}, supply.Sub(am).Bytes())
	return nil
}

func (cont *StakingFarmContract) addTotalFarmPosition(cc *types.ContractContext, user common.Address, am *amount.Amount) {
	cc.SetAccountData(user, []byte{tagTotalFarmPosition}, cont.TotalFarmPosition(cc, user).Add(am).Bytes())
}

func (cont *StakingFarmContract) subTotalFarmPosition(cc *types.ContractContext, user common.Address, am *amount.Amount) error {
	total := cont.TotalFarmPosition(cc, user)
	if total.Less(am) {
		return errors.New("total farm position underflow")
	}
	total = total.Sub(am)
	if total.IsZero() {
		cc.SetAccountData(user, []byte{tagTotalFarmPosition}, nil)
	} else {
		cc.SetAccountData(user, []byte{tagTotalFarmPosition}, total.Bytes())
	}
	return nil
}

func (cont *StakingFarmContract) checkOwner(cc *types.ContractContext) error {
	if cc.From() != cont.Owner(cc) && cc.From() != cont.master {
		return errors.New("ownable: caller is not the owner")
	}
	return nil
}

func (cont *StakingFarmContract) checkProxy(cc *types.ContractContext) error {
	if !cont.IsProxy(cc, cc.From()) {
		return errors.New("caller is not a whitelisted proxy")
	}
	return nil
}

func (cont *StakingFarmContract) boostedEnergyConst(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagEnergyConst}))
}

func (cont *StakingFarmContract) boostedFarmConst(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagFarmConst}))
}

func (cont *StakingFarmContract) userEnergy(cc *types.ContractContext, user common.Address) (*big.Int, error) {
	ins, err := cc.Exec(cc, cont.EnergyFactory(cc), "GetUserEnergy", []interface{}{user})
	if err != nil {
		return nil, err
	}
	e, ok := ins[0].(*big.Int)
	if !ok {
		return nil, errors.New("user energy is not big int")
	}
	return e, nil
}
