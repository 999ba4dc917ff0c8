package farmcore

import (
	"math/big"

	"github.com/meverselabs/meverse/common/amount"
)

// RewardPerShareIncrease returns the scaled ledger increase from handing
// toDistribute out across supply shares. The division floors and the
// remainder is forfeited, never carried forward.
func RewardPerShareIncrease(toDistribute, supply *amount.Amount) *big.Int {
	if supply == nil || supply.IsZero() {
		return big.NewInt(0)
	}
	inc := big.NewInt(0).Mul(toDistribute.Int, DivisionSafetyConstant)
	return inc.Div(inc, supply.Int)
}

// CalculateReward returns the reward owed to amt shares that entered the
// ledger at entryRPS. currentRPS below entryRPS means the ledger ran
// backwards and the caller's state is corrupt.
func CalculateReward(amt *amount.Amount, currentRPS, entryRPS *big.Int) (*amount.Amount, error) {
	if currentRPS.Cmp(entryRPS) < 0 {
		return nil, ErrLedgerBehind
	}
	r := big.NewInt(0).Sub(currentRPS, entryRPS)
	r.Mul(r, amt.Int)
	r.Div(r, DivisionSafetyConstant)
	return &amount.Amount{Int: r}, nil
}

// AprBoundedReward returns the accrual of supply staked for elapsed
// blocks at maxApr basis points per blocksPerYear blocks.
func AprBoundedReward(supply *amount.Amount, maxApr uint64, elapsed uint32, blocksPerYear uint32) *amount.Amount {
	r := big.NewInt(0).Mul(supply.Int, big.NewInt(0).SetUint64(maxApr))
	r.Mul(r, big.NewInt(int64(elapsed)))
	r.Div(r, big.NewInt(0).Mul(big.NewInt(int64(blocksPerYear)), big.NewInt(0).SetUint64(MaxPercentage)))
	return &amount.Amount{Int: r}
}

// BoostedReward returns the slice of weekPool owed to a user holding
// userEnergy of totalEnergy and userFarm of totalFarm, weighted by
// energyConst and farmConst, clamped to the remaining pool. A week with
// no energy or no farm supply pays nothing.
func BoostedReward(weekPool, remaining *amount.Amount, userEnergy, totalEnergy *big.Int, userFarm, totalFarm *amount.Amount, energyConst, farmConst uint64) *amount.Amount {
	if weekPool.IsZero() || remaining.IsZero() {
		return amount.NewAmount(0, 0)
	}
	if totalEnergy.Sign() <= 0 || totalFarm.IsZero() {
		return amount.NewAmount(0, 0)
	}
	if userEnergy.Sign() <= 0 {
		return amount.NewAmount(0, 0)
	}

	// weekPool * (ec*userEnergy/totalEnergy + fc*userFarm/totalFarm) / (ec+fc)
	// evaluated over a common denominator so only the final division floors.
	ec := big.NewInt(0).SetUint64(energyConst)
	fc := big.NewInt(0).SetUint64(farmConst)
	num := big.NewInt(0).Mul(ec, userEnergy)
	num.Mul(num, totalFarm.Int)
	t := big.NewInt(0).Mul(fc, userFarm.Int)
	t.Mul(t, totalEnergy)
	num.Add(num, t)
	num.Mul(num, weekPool.Int)

	den := big.NewInt(0).Add(ec, fc)
	den.Mul(den, totalEnergy)
	den.Mul(den, totalFarm.Int)

	r := &amount.Amount{Int: num.Div(num, den)}
	if remaining.Less(r) {
		return remaining.Clone()
	}
	return r
}

// CeilDiv returns a/b rounded toward positive infinity. b must be positive.
func CeilDiv(a, b *big.Int) *big.Int {
	if a.Sign() == 0 {
		return big.NewInt(0)
	}
	r := big.NewInt(0).Sub(a, big.NewInt(1))
	r.Div(r, b)
	return r.Add(r, big.NewInt(1))
}

// MinAmount returns the smaller of a and b without aliasing either.
func MinAmount(a, b *amount.Amount) *amount.Amount {
	if a.Less(b) {
		return a.Clone()
	}
	return b.Clone()
}
