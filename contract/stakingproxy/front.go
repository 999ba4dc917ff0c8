package stakingproxy

import (
	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"
)

func (cont *StakingProxyContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *StakingProxyContract
}

func (f *front) StakeDualYield(cc *types.ContractContext, lpFarmNonce uint64, Amount *amount.Amount) (uint64, error) {
	return f.cont.StakeDualYield(cc, lpFarmNonce, Amount)
}

func (f *front) ClaimDualYield(cc *types.ContractContext, dualNonce uint64, Amount *amount.Amount) (uint64, error) {
	return f.cont.ClaimDualYield(cc, dualNonce, Amount)
}

func (f *front) UnstakeDualYield(cc *types.ContractContext, dualNonce uint64, Amount *amount.Amount) (*amount.Amount, error) {
	return f.cont.UnstakeDualYield(cc, dualNonce, Amount)
}

func (f *front) StakingEquivalent(cc *types.ContractContext, lpAmount *amount.Amount) (*amount.Amount, error) {
	return f.cont.StakingEquivalent(cc, lpAmount)
}

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.Owner(cc)
}

func (f *front) LpFarm(cc types.ContractLoader) common.Address {
	return f.cont.LpFarm(cc)
}

func (f *front) StakingFarm(cc types.ContractLoader) common.Address {
	return f.cont.StakingFarm(cc)
}

func (f *front) Pair(cc types.ContractLoader) common.Address {
	return f.cont.Pair(cc)
}

func (f *front) LpToken(cc types.ContractLoader) common.Address {
	return f.cont.LpToken(cc)
}

func (f *front) StakingToken(cc types.ContractLoader) common.Address {
	return f.cont.StakingToken(cc)
}

func (f *front) LpFarmToken(cc types.ContractLoader) common.Address {
	return f.cont.LpFarmToken(cc)
}

func (f *front) DualYieldToken(cc types.ContractLoader) common.Address {
	return f.cont.DualYieldToken(cc)
}
