package energy

import (
	"math/big"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"
)

func (cont *EnergyContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *EnergyContract
}

func (f *front) Lock(cc *types.ContractContext, Amount *amount.Amount, LockEpochs uint32) error {
	return f.cont.Lock(cc, Amount, LockEpochs)
}

func (f *front) Unlock(cc *types.ContractContext) error {
	return f.cont.Unlock(cc)
}

func (f *front) CurrentEpoch(cc *types.ContractContext) uint32 {
	return f.cont.CurrentEpoch(cc)
}

func (f *front) GetUserEnergy(cc *types.ContractContext, user common.Address) *big.Int {
	return f.cont.GetUserEnergy(cc, user)
}

func (f *front) GetTotalEnergy(cc *types.ContractContext) *big.Int {
	return f.cont.GetTotalEnergy(cc)
}

func (f *front) GetLockedTokens(cc types.ContractLoader, user common.Address) *amount.Amount {
	return f.cont.GetLockedTokens(cc, user)
}

func (f *front) GetUnlockEpoch(cc types.ContractLoader, user common.Address) uint32 {
	return f.cont.GetUnlockEpoch(cc, user)
}

func (f *front) LockToken(cc types.ContractLoader) common.Address {
	return f.cont.LockToken(cc)
}

func (f *front) TotalLockedTokens(cc types.ContractLoader) *amount.Amount {
	return f.cont.TotalLockedTokens(cc)
}
