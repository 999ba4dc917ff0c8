package farm

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
)

func validateConstruction(data *FarmContractConstruction) error {
	if data.EpochBlocks == 0 {
		return errors.New("epoch blocks is 0")
	}
	if uint64(data.BoostedYieldsPercentage) > farmcore.MaxPercentage {
		return errors.Errorf("invalid boosted yields percentage %v", data.BoostedYieldsPercentage)
	}
	if data.EnergyConst+data.FarmConst == 0 {
		return errors.New("energy and farm consts are both 0")
	}
	if data.PerBlockReward == nil || data.MinEnergyAmount == nil || data.MinFarmAmount == nil {
		return errors.New("missing amount field")
	}
	return nil
}

// generateAggregatedRewards advances the ledger to the current block.
// The boosted cut of the accrual feeds the running week's pool, the
// rest raises reward per share. Calling it twice in a block is a no op.
func (cont *FarmContract) generateAggregatedRewards(cc *types.ContractContext) error {
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

	toDistribute := cont.PerBlockRewardAmount(cc).MulC(int64(current - lastBlock))
	if !toDistribute.IsPlus() {
		return nil
	}
	boostedCut := toDistribute.MulC(int64(cont.BoostedYieldsPercentage(cc))).DivC(int64(farmcore.MaxPercentage))
	base := toDistribute.Sub(boostedCut)

	rps := cont.RewardPerShare(cc)
	rps.Add(rps, farmcore.RewardPerShareIncrease(base, supply))
	cc.SetContractData([]byte{tagRewardPerShare}, rps.Bytes())

	cc.SetContractData([]byte{tagRewardReserve}, cont.RewardReserve(cc).Add(toDistribute).Bytes())

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

// snapshotWeek pins the boosted denominators the first time a week sees
// an accrual.
func (cont *FarmContract) snapshotWeek(cc *types.ContractContext, week uint32, supply *amount.Amount) error {
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

// pendingRewardPerShare is the ledger value an accrual right now would
// produce, without writing it.
func (cont *FarmContract) pendingRewardPerShare(cc *types.ContractContext) *big.Int {
	rps := cont.RewardPerShare(cc)
	toDistribute := cont.pendingDistribution(cc)
	if toDistribute == nil {
		return rps
	}
	boostedCut := toDistribute.MulC(int64(cont.BoostedYieldsPercentage(cc))).DivC(int64(farmcore.MaxPercentage))
	return rps.Add(rps, farmcore.RewardPerShareIncrease(toDistribute.Sub(boostedCut), cont.FarmTokenSupply(cc)))
}

func (cont *FarmContract) pendingRewardReserve(cc *types.ContractContext) *amount.Amount {
	reserve := cont.RewardReserve(cc)
	toDistribute := cont.pendingDistribution(cc)
	if toDistribute == nil {
		return reserve
	}
	return reserve.Add(toDistribute)
}

func (cont *FarmContract) pendingDistribution(cc *types.ContractContext) *amount.Amount {
	lastBlock := cont.LastRewardBlock(cc)
	current := cc.TargetHeight()
	if current <= lastBlock || !cont.ProduceRewardsEnabled(cc) {
		return nil
	}
	supply := cont.FarmTokenSupply(cc)
	if supply.IsZero() {
		return nil
	}
	toDistribute := cont.PerBlockRewardAmount(cc).MulC(int64(current - lastBlock))
	if !toDistribute.IsPlus() {
		return nil
	}
	return toDistribute
}

// payReward clamps the reward to the reserve, debits the reserve and
// mints the reward token to the receiver. Returns what was really paid.
func (cont *FarmContract) payReward(cc *types.ContractContext, to common.Address, reward *amount.Amount) (*amount.Amount, error) {
	paid, err := cont.debitReward(cc, reward)
	if err != nil {
		return nil, err
	}
	if !paid.IsPlus() {
		return paid, nil
	}
	if _, err := cc.Exec(cc, cont.RewardToken(cc), "Mint", []interface{}{to, paid}); err != nil {
		return nil, err
	}
	return paid, nil
}

// payPositionReward routes the payout of a position reward. Positions
// that entered before the migration epoch are paid through the reward
// locker when one is configured, everything else goes out directly.
func (cont *FarmContract) payPositionReward(cc *types.ContractContext, to common.Address, reward *amount.Amount, enteringEpoch uint32) (*amount.Amount, error) {
	locker := cont.RewardLocker(cc)
	if locker == (common.Address{}) || enteringEpoch >= cont.MigrationEpoch(cc) {
		return cont.payReward(cc, to, reward)
	}
	paid, err := cont.debitReward(cc, reward)
	if err != nil {
		return nil, err
	}
	if !paid.IsPlus() {
		return paid, nil
	}
	if _, err := cc.Exec(cc, cont.RewardToken(cc), "Mint", []interface{}{locker, paid}); err != nil {
		return nil, err
	}
	if _, err := cc.Exec(cc, locker, "LockAndSend", []interface{}{to, paid}); err != nil {
		return nil, err
	}
	return paid, nil
}

func (cont *FarmContract) debitReward(cc *types.ContractContext, reward *amount.Amount) (*amount.Amount, error) {
	reserve := cont.RewardReserve(cc)
	paid := farmcore.MinAmount(reward, reserve)
	if !paid.IsPlus() {
		return amount.NewAmount(0, 0), nil
	}
	cc.SetContractData([]byte{tagRewardReserve}, reserve.Sub(paid).Bytes())
	return paid, nil
}

func (cont *FarmContract) loadAttributes(cc *types.ContractContext, nonce uint64) (*farmcore.FarmTokenAttributes, error) {
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

func (cont *FarmContract) mintPosition(cc *types.ContractContext, to common.Address, attrs *farmcore.FarmTokenAttributes) (uint64, error) {
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

func (cont *FarmContract) burnPosition(cc *types.ContractContext, from common.Address, nonce uint64, am *amount.Amount) error {
	_, err := cc.Exec(cc, cont.FarmToken(cc), "Burn", []interface{}{from, nonce, am})
	return err
}

func (cont *FarmContract) addFarmTokenSupply(cc *types.ContractContext, am *amount.Amount) {
	cc.SetContractData([]byte{tagFarmTokenSupply}, cont.FarmTokenSupply(cc).Add(am).Bytes())
}

func (cont *FarmContract) subFarmTokenSupply(cc *types.ContractContext, am *amount.Amount) error {
	supply := cont.FarmTokenSupply(cc)
	if supply.Less(am) {
		return errors.New("farm token supply underflow")
	}
	cc.SetContractData([]byte{tagFarmTokenSupply}, supply.Sub(am).Bytes())
	return nil
}

func (cont *FarmContract) addTotalFarmPosition(cc *types.ContractContext, user common.Address, am *amount.Amount) {
	cc.SetAccountData(user, []byte{tagTotalFarmPosition}, cont.TotalFarmPosition(cc, user).Add(am).Bytes())
}

func (cont *FarmContract) subTotalFarmPosition(cc *types.ContractContext, user common.Address, am *amount.Amount) error {
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

// checkOnBehalf gates a caller acting for user. The user must have
// whitelisted the caller and the owner must not have blacklisted it.
func (cont *FarmContract) checkOnBehalf(cc *types.ContractContext, user common.Address) error {
	caller := cc.From()
	if caller == user {
		return nil
	}
	if cont.IsBlacklisted(cc, caller) {
		return errors.New("caller is blacklisted")
	}
	if !cont.IsWhitelistedOnBehalf(cc, user, caller) {
		return errors.New("caller is not whitelisted by user")
	}
	return nil
}

func (cont *FarmContract) checkOwner(cc *types.ContractContext) error {
	if cc.From() != cont.Owner(cc) && cc.From() != cont.master {
		return errors.New("ownable: caller is not the owner")
	}
	return nil
}

func (cont *FarmContract) boostedEnergyConst(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagEnergyConst}))
}

func (cont *FarmContract) boostedFarmConst(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagFarmConst}))
}

func (cont *FarmContract) userEnergy(cc *types.ContractContext, user common.Address) (*big.Int, error) {
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
