package farmcore

import (
	"math/big"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
)

// PositionSlice is one payment flowing into a merge: amt shares cut out
// of a position, with the proportional part of its compounded reward.
type PositionSlice struct {
	Amount           *amount.Amount
	RewardPerShare   *big.Int
	EnteringEpoch    uint32
	CompoundedReward *amount.Amount
	OriginalOwner    common.Address
}

// Slice cuts amt shares out of the position. The compounded reward moves
// proportionally, floored, so the remainder position keeps the dust.
func (s *FarmTokenAttributes) Slice(amt *amount.Amount) (*PositionSlice, error) {
	if !amt.IsPlus() {
		return nil, ErrZeroAmount
	}
	if s.CurrentFarmAmount.Less(amt) {
		return nil, ErrInsufficientSlice
	}
	comp := big.NewInt(0).Mul(s.CompoundedReward.Int, amt.Int)
	comp.Div(comp, s.CurrentFarmAmount.Int)
	return &PositionSlice{
		Amount:           amt.Clone(),
		RewardPerShare:   big.NewInt(0).Set(s.RewardPerShare),
		EnteringEpoch:    s.EnteringEpoch,
		CompoundedReward: &amount.Amount{Int: comp},
		OriginalOwner:    s.OriginalOwner,
	}, nil
}

// MergePositions folds payments into one position. The merged entry
// point of the ledger is the amount-weighted mean of the payments'
// entry points rounded up, so the merged position can never be owed
// more than the sum of its parts. The merged entering epoch is the
// oldest of the payments.
func MergePositions(slices []*PositionSlice) (*FarmTokenAttributes, error) {
	if len(slices) == 0 {
		return nil, ErrNoPayments
	}

	owner := slices[0].OriginalOwner
	epoch := slices[0].EnteringEpoch
	total := amount.NewAmount(0, 0)
	compounded := amount.NewAmount(0, 0)
	weighted := big.NewInt(0)
	for _, sl := range slices {
		if sl.Amount == nil || !sl.Amount.IsPlus() {
			return nil, ErrZeroAmount
		}
		if sl.OriginalOwner != owner {
			return nil, ErrOwnerMixed
		}
		if sl.EnteringEpoch < epoch {
			epoch = sl.EnteringEpoch
		}
		total = total.Add(sl.Amount)
		compounded = compounded.Add(sl.CompoundedReward)
		weighted.Add(weighted, big.NewInt(0).Mul(sl.Amount.Int, sl.RewardPerShare))
	}

	return &FarmTokenAttributes{
		RewardPerShare:    CeilDiv(weighted, total.Int),
		EnteringEpoch:     epoch,
		CompoundedReward:  compounded,
		CurrentFarmAmount: total,
		OriginalOwner:     owner,
	}, nil
}
