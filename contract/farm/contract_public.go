package farm

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

// EnterFarm deposits Amount of the farming token and folds it together
// with any listed positions into one fresh position token.
func (cont *FarmContract) EnterFarm(cc *types.ContractContext, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	return cont.enterFarm(cc, cc.From(), Amount, nonces, amounts)
}

// EnterFarmOnBehalf deposits the caller's tokens into a position owned
// by user. The caller must be whitelisted by user.
func (cont *FarmContract) EnterFarmOnBehalf(cc *types.ContractContext, user common.Address, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	if err := cont.checkOnBehalf(cc, user); err != nil {
		return 0, err
	}
	return cont.enterFarm(cc, user, Amount, nonces, amounts)
}

func (cont *FarmContract) enterFarm(cc *types.ContractContext, user common.Address, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	if cont.State(cc) != StateActive {
		return 0, errors.New("farm is not active")
	}
	if !Amount.IsPlus() {
		return 0, errors.Errorf("invalid enter amount %v", Amount.String())
	}
	if len(nonces) != len(amounts) {
		return 0, errors.New("nonces and amounts length mismatch")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return 0, err
	}

	if _, err := cc.Exec(cc, cont.FarmingToken(cc), "TransferFrom", []interface{}{cc.From(), cont.addr, Amount}); err != nil {
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
		sl, err := cont.consumePosition(cc, user, nonce, amounts[i])
		if err != nil {
			return 0, err
		}
		slices = append(slices, sl)
	}

	merged, err := farmcore.MergePositions(slices)
	if err != nil {
		return 0, err
	}
	newNonce, err := cont.mintPosition(cc, user, merged)
	if err != nil {
		return 0, err
	}
	cont.addFarmTokenSupply(cc, Amount)
	cont.addTotalFarmPosition(cc, user, Amount)
	return newNonce, nil
}

// consumePosition burns am of nonce held by user and returns the slice
// taken out of it for merging.
func (cont *FarmContract) consumePosition(cc *types.ContractContext, user common.Address, nonce uint64, am *amount.Amount) (*farmcore.PositionSlice, error) {
	attrs, err := cont.loadAttributes(cc, nonce)
	if err != nil {
		return nil, err
	}
	sl, err := attrs.Slice(am)
	if err != nil {
		return nil, err
	}
	if err := cont.burnPosition(cc, user, nonce, am); err != nil {
		return nil, err
	}
	return sl, nil
}

// ClaimRewards pays the base reward earned by Amount of the position
// and reissues it at the current ledger value under a new nonce.
func (cont *FarmContract) ClaimRewards(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	return cont.claimRewards(cc, cc.From(), nonce, Amount)
}

func (cont *FarmContract) ClaimRewardsOnBehalf(cc *types.ContractContext, user common.Address, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	if err := cont.checkOnBehalf(cc, user); err != nil {
		return 0, nil, err
	}
	return cont.claimRewards(cc, user, nonce, Amount)
}

func (cont *FarmContract) claimRewards(cc *types.ContractContext, user common.Address, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	if cont.State(cc) == StateInactive {
		return 0, nil, errors.New("farm is not active")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return 0, nil, err
	}

	sl, err := cont.consumePosition(cc, user, nonce, Amount)
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
	paid, err := cont.payPositionReward(cc, user, reward, sl.EnteringEpoch)
	if err != nil {
		return 0, nil, err
	}

	newNonce, err := cont.mintPosition(cc, user, &farmcore.FarmTokenAttributes{
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

// CompoundRewards folds the earned reward back into the position
// principal. Only possible when the farm pays rewards in the farming
// token itself.
func (cont *FarmContract) CompoundRewards(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, error) {
	if cont.State(cc) != StateActive {
		return 0, errors.New("farm is not active")
	}
	if cont.FarmingToken(cc) != cont.RewardToken(cc) {
		return 0, errors.New("farming token differs from reward token")
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
	// compounded rewards are held by the farm until exit
	if reward.IsPlus() {
		if _, err := cc.Exec(cc, cont.RewardToken(cc), "Mint", []interface{}{cont.addr, reward}); err != nil {
			return 0, err
		}
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

// ExitFarm pays the reward earned by Amount of the position and returns
// the same Amount of farming tokens. What is left of the nonce stays in
// the holder's balance untouched.
func (cont *FarmContract) ExitFarm(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (*amount.Amount, error) {
	if cont.State(cc) == StateInactive {
		return nil, errors.New("farm is not active")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return nil, err
	}

	user := cc.From()
	sl, err := cont.consumePosition(cc, user, nonce, Amount)
	if err != nil {
		return nil, err
	}
	if sl.OriginalOwner != user {
		return nil, errors.New("not the original owner")
	}
	reward, err := farmcore.CalculateReward(Amount, cont.RewardPerShare(cc), sl.RewardPerShare)
	if err != nil {
		return nil, err
	}
	paid, err := cont.payPositionReward(cc, user, reward, sl.EnteringEpoch)
	if err != nil {
		return nil, err
	}

	if err := cont.subFarmTokenSupply(cc, Amount); err != nil {
		return nil, err
	}
	if err := cont.subTotalFarmPosition(cc, user, Amount); err != nil {
		return nil, err
	}
	if _, err := cc.Exec(cc, cont.FarmingToken(cc), "Transfer", []interface{}{user, Amount}); err != nil {
		return nil, err
	}
	return paid, nil
}

// ClaimBoostedRewards pays the caller's share of the current week's
// boosted pool. One claim per user and week.
func (cont *FarmContract) ClaimBoostedRewards(cc *types.ContractContext) (*amount.Amount, error) {
	return cont.claimBoostedRewards(cc, cc.From())
}

func (cont *FarmContract) ClaimBoostedRewardsOnBehalf(cc *types.ContractContext, user common.Address) (*amount.Amount, error) {
	if err := cont.checkOnBehalf(cc, user); err != nil {
		return nil, err
	}
	return cont.claimBoostedRewards(cc, user)
}

func (cont *FarmContract) claimBoostedRewards(cc *types.ContractContext, user common.Address) (*amount.Amount, error) {
	if cont.State(cc) == StateInactive {
		return nil, errors.New("farm is not active")
	}
	if err := cont.generateAggregatedRewards(cc); err != nil {
		return nil, err
	}

	// a repeat claim inside the same week pays zero
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

// AddToWhitelist lets addr enter and claim on the caller's behalf.
func (cont *FarmContract) AddToWhitelist(cc *types.ContractContext, addr common.Address) {
	cc.SetAccountData(cc.From(), makeAddressKey(tagOnBehalfWhitelist, addr), []byte{1})
}

func (cont *FarmContract) RemoveFromWhitelist(cc *types.ContractContext, addr common.Address) {
	cc.SetAccountData(cc.From(), makeAddressKey(tagOnBehalfWhitelist, addr), nil)
}
