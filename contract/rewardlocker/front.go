package rewardlocker

import (
	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"
)

func (cont *RewardLockerContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *RewardLockerContract
}

func (f *front) LockAndSend(cc *types.ContractContext, to common.Address, Amount *amount.Amount) error {
	return f.cont.LockAndSend(cc, to, Amount)
}

func (f *front) Redeem(cc *types.ContractContext) (*amount.Amount, error) {
	return f.cont.Redeem(cc)
}

func (f *front) SetFarm(cc *types.ContractContext, addr common.Address, is bool) error {
	return f.cont.SetFarm(cc, addr, is)
}

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.Owner(cc)
}

func (f *front) RewardToken(cc types.ContractLoader) common.Address {
	return f.cont.RewardToken(cc)
}

func (f *front) LockEpochs(cc types.ContractLoader) uint32 {
	return f.cont.LockEpochs(cc)
}

func (f *front) CurrentEpoch(cc *types.ContractContext) uint32 {
	return f.cont.CurrentEpoch(cc)
}

func (f *front) IsFarm(cc types.ContractLoader, addr common.Address) bool {
	return f.cont.IsFarm(cc, addr)
}

func (f *front) LockedBalance(cc types.ContractLoader, user common.Address) *amount.Amount {
	return f.cont.LockedBalance(cc, user)
}

func (f *front) UnlockEpoch(cc types.ContractLoader, user common.Address) uint32 {
	return f.cont.UnlockEpoch(cc, user)
}
