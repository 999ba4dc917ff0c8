package farmstaking

import (
	"github.com/pkg/errors"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
)

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Stake deposits Amount of the staking token, folded together with any
// listed positions into a fresh position token.
func (cont *StakingFarmContract) Stake(cc *types.ContractContext, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	if cont.State(cc) != StateActive {
		return 0, errors.New("farm is not active")
	}
	if !Amount.IsPlus() {
		return 0, errors.Errorf("invalid stake amount %v", Amount.String())
	}
	if _, err := cc.Exec(cc, cont.StakingToken(cc), "TransferFrom", []interface{}{cc.From(), cont.addr, Amount}); err != nil {
		return 0, err
	}
	return cont.stake(cc, cc.From(), cc.From(), Amount, nonces, amounts)
}

// StakeThroughProxy opens a virtual position for user without a token
// transfer. The proxy holds the position token, the LP locked at the
// proxy backs the principal.
func (cont *StakingFarmContract) StakeThroughProxy(cc *types.ContractContext, user common.Address, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	if err := cont.checkProxy(cc); err != nil {
		return 0, err
	}
	if cont.State(cc) != StateActive {
		return 0, errors.New("farm is not active")
	}
	if !Amount.IsPlus() {
		return 0, errors.Errorf("invalid stake amount %v", Amount.String())
	}
	return cont.stake(cc, cc.From(), user, Amount, nonces, amounts)
}

// stake merges the fresh principal with the given positions held by
// holder. The original owner of the merged position is user.
func (cont *StakingFarmContract) stake(cc *types.ContractContext, holder common.Address, user common.Address, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	if len(nonces) != len(amounts) {
		return 0, errors.New("nonces and amounts length mismatch")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return 0, err
	}

	slices := make([]*farmcore.PositionSlice, 0, len(nonces)+1)
	slices = append(slices, &farmcore.PositionSlice{
		Amount:           Amount.Clone(),
		RewardPerShare:   cont.RewardPerShare(cc),
		EnteringEpoch:    cont.CurrentEpoch(cc),
		CompoundedReward: amount.NewAmount(0, 0),
		OriginalOwner:    user,
	})
	for i, nonce := range nonces {
		sl, err := cont.consumePosition(cc, holder, nonce, amounts[i])
		if err != nil {
			return 0, err
		}
		slices = append(slices, sl)
	}

	merged, err := farmcore.MergePositions(slices)
	if err != nil {
		return 0, err
	}
	newNonce, err := cont.mintPosition(cc, holder, merged)
	if err != nil {
		return 0, err
	}
	cont.addFarmTokenSupply(cc, Amount)
	cont.addTotalFarmPosition(cc, user, Amount)
	return newNonce, nil
}

// ClaimRewards pays the reward earned by Amount of the position and
// reissues it at the current ledger value.
func (cont *StakingFarmContract) ClaimRewards(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	return cont.claimRewards(cc, cc.From(), cc.From(), nonce, Amount)
}

func (cont *StakingFarmContract) ClaimThroughProxy(cc *types.ContractContext, user common.Address, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	if err := cont.checkProxy(cc); err != nil {
		return 0, nil, err
	}
	return cont.claimRewards(cc, cc.From(), user, nonce, Amount)
}

func (cont *StakingFarmContract) claimRewards(cc *types.ContractContext, holder common.Address, user common.Address, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	if cont.State(cc) == StateInactive {
		return 0, nil, errors.New("farm is not active")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return 0, nil, err
	}

	sl, err := cont.consumePosition(cc, holder, nonce, Amount)
	if err != nil {
		return 0, nil, err
	}
	if sl.OriginalOwner != user {
		return 0, nil, errors.New("not the original owner")
	}
	rps := cont.RewardPerShare(cc)
	reward, err := farmcore.CalculateReward(Amount, rps, sl.RewardPerShare)
	if err != nil {
		return 0, nil, err
	}
	paid, err := cont.payReward(cc, user, reward)
	if err != nil {
		return 0, nil, err
	}

	newNonce, err := cont.mintPosition(cc, holder, &farmcore.FarmTokenAttributes{
		RewardPerShare:    rps,
		EnteringEpoch:     sl.EnteringEpoch,
		CompoundedReward:  sl.CompoundedReward,
		CurrentFarmAmount: Amount.Clone(),
		OriginalOwner:     user,
	})
	if err != nil {
		return 0, nil, err
	}
	return newNonce, paid, nil
}

// CompoundRewards folds the earned reward into the principal. The
// reward tokens stay in the farm, only the reserve is debited.
func (cont *StakingFarmContract) CompoundRewards(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, error) {
	if cont.State(cc) != StateActive {
		return 0, errors.New("farm is not active")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return 0, err
	}

	user := cc.From()
	sl, err := cont.consumePosition(cc, user, nonce, Amount)
	if err != nil {
		return 0, err
	}
	if sl.OriginalOwner != user {
		return 0, errors.New("not the original owner")
	}
	rps := cont.RewardPerShare(cc)
	reward, err := farmcore.CalculateReward(Amount, rps, sl.RewardPerShare)
	if err != nil {
		return 0, err
	}
	reward, err = cont.debitReward(cc, reward)
	if err != nil {
		return 0, err
	}

	newNonce, err := cont.mintPosition(cc, user, &farmcore.FarmTokenAttributes{
		RewardPerShare:    rps,
		EnteringEpoch:     sl.EnteringEpoch,
		CompoundedReward:  sl.CompoundedReward.Add(reward),
		CurrentFarmAmount: Amount.Add(reward),
		OriginalOwner:     user,
	})
	if err != nil {
		return 0, err
	}
	cont.addFarmTokenSupply(cc, reward)
	cont.addTotalFarmPosition(cc, user, reward)
	return newNonce, nil
}

// Unstake pays the reward earned by Amount and starts unbonding it. The
// principal is handed back as an unbond token that matures after the
// minimum unbond epochs.
func (cont *StakingFarmContract) Unstake(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	return cont.unstake(cc, cc.From(), cc.From(), nonce, Amount, true)
}

// UnstakeThroughProxy closes Amount of a virtual position. No unbond
// token is minted, the LP at the proxy was the principal.
func (cont *StakingFarmContract) UnstakeThroughProxy(cc *types.ContractContext, user common.Address, nonce uint64, Amount *amount.Amount) (*amount.Amount, error) {
	if err := cont.checkProxy(cc); err != nil {
		return nil, err
	}
	_, paid, err := cont.unstake(cc, cc.From(), user, nonce, Amount, false)
	return paid, err
}

func (cont *StakingFarmContract) unstake(cc *types.ContractContext, holder common.Address, user common.Address, nonce uint64, Amount *amount.Amount, mintUnbond bool) (uint64, *amount.Amount, error) {
	if cont.State(cc) == StateInactive {
		return 0, nil, errors.New("farm is not active")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return 0, nil, err
	}

	sl, err := cont.consumePosition(cc, holder, nonce, Amount)
	if err != nil {
		return 0, nil, err
	}
	if sl.OriginalOwner != user {
		return 0, nil, errors.New("not the original owner")
	}
	reward, err := farmcore.CalculateReward(Amount, cont.RewardPerShare(cc), sl.RewardPerShare)
	if err != nil {
		return 0, nil, err
	}
	paid, err := cont.payReward(cc, user, reward)
	if err != nil {
		return 0, nil, err
	}
	if err := cont.subFarmTokenSupply(cc, Amount); err != nil {
		return 0, nil, err
	}
	if err := cont.subTotalFarmPosition(cc, user, Amount); err != nil {
		return 0, nil, err
	}
	if !mintUnbond {
		return 0, paid, nil
	}

	attrs := &farmcore.UnbondTokenAttributes{
		UnlockEpoch:   cont.CurrentEpoch(cc) + cont.MinUnbondEpochs(cc),
		OriginalOwner: user,
	}
	ins, err := cc.Exec(cc, cont.UnbondToken(cc), "Mint", []interface{}{user, Amount, attrs.Bytes()})
	if err != nil {
		return 0, nil, err
	}
	unbondNonce, ok := ins[0].(uint64)
	if !ok {
		return 0, nil, errors.New("nonce is not uint64")
	}
	return unbondNonce, paid, nil
}

// Unbond releases the staking tokens of a matured unbond position.
func (cont *StakingFarmContract) Unbond(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) error {
	if cont.State(cc) == StateInactive {
		return errors.New("farm is not active")
	}
	user := cc.From()
	ins, err := cc.Exec(cc, cont.UnbondToken(cc), "Attributes", []interface{}{nonce})
	if err != nil {
		return err
	}
	bs, ok := ins[0].([]byte)
	if !ok {
		return errors.New("attributes is not bytes")
	}
	attrs, err := farmcore.UnbondTokenAttributesFromBytes(bs)
	if err != nil {
		return err
	}
	if attrs.OriginalOwner != user {
		return errors.New("not the original owner")
	}
	if cont.CurrentEpoch(cc) < attrs.UnlockEpoch {
		return errors.Errorf("unbonding until epoch %v", attrs.UnlockEpoch)
	}
	if _, err := cc.Exec(cc, cont.UnbondToken(cc), "Burn", []interface{}{user, nonce, Amount}); err != nil {
		return err
	}
	if _, err := cc.Exec(cc, cont.StakingToken(cc), "Transfer", []interface{}{user, Amount}); err != nil {
		return err
	}
	return nil
}

// ClaimBoostedRewards pays the caller's share of the current week's
// boosted pool. One claim per user and week.
func (cont *StakingFarmContract) ClaimBoostedRewards(cc *types.ContractContext) (*amount.Amount, error) {
	if cont.State(cc) == StateInactive {
		return nil, errors.New("farm is not active")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return nil, err
	}

	// a repeat claim inside the same week pays zero
	user := cc.From()
	week := cont.CurrentWeek(cc)
	if cont.HasClaimedBoostedRewards(cc, user, week) {
		return amount.NewAmount(0, 0), nil
	}
	cc.SetAccountData(user, makeWeekKey(tagWeekClaimed, week), []byte{1})

	userEnergy, err := cont.userEnergy(cc, user)
	if err != nil {
		return nil, err
	}
	userFarm := cont.TotalFarmPosition(cc, user)
	if userEnergy.Cmp(cont.MinEnergyAmount(cc).Int) < 0 || userFarm.Less(cont.MinFarmAmount(cc)) {
		return amount.NewAmount(0, 0), nil
	}

	remaining := cont.RemainingBoostedRewards(cc, week)
	reward := farmcore.BoostedReward(
		cont.RewardsPerWeek(cc, week), remaining,
		userEnergy, cont.TotalEnergyForWeek(cc, week),
		userFarm, cont.TotalFarmSupplyForWeek(cc, week),
		uint64(cont.boostedEnergyConst(cc)), uint64(cont.boostedFarmConst(cc)),
	)
	if !reward.IsPlus() {
		return amount.NewAmount(0, 0), nil
	}
	cc.SetContractData(makeWeekKey(tagWeekRemaining, week), remaining.Sub(reward).Bytes())
	return cont.payReward(cc, user, reward)
}
