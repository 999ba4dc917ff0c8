package energy

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

// EnergyContract locks a governance token for a number of epochs and
// exposes the resulting energy, lockedAmount times remaining epochs,
// decaying linearly to zero at the unlock epoch. Farms read it to weigh
// boosted yields.
type EnergyContract struct {
	addr   common.Address
	master common.Address
}

func (cont *EnergyContract) Address() common.Address {
	return cont.addr
}

func (cont *EnergyContract) Master() common.Address {
	return cont.master
}

func (cont *EnergyContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *EnergyContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &EnergyContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.EpochBlocks == 0 {
		return errors.New("epoch blocks is 0")
	}
	cc.SetContractData([]byte{tagLockToken}, data.LockToken[:])
	cc.SetContractData([]byte{tagEpochBlocks}, bin.Uint32Bytes(data.EpochBlocks))
	cc.SetContractData([]byte{tagMaxLockEpochs}, bin.Uint32Bytes(data.MaxLockEpochs))
	return nil
}

func (cont *EnergyContract) OnReward(cc *types.ContractContext, b *types.Block, CountMap map[common.Address]uint32) (map[common.Address]*amount.Amount, error) {
	return nil, nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *EnergyContract) lockToken(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagLockToken}))
	return addr
}

func (cont *EnergyContract) addAggregate(cc *types.ContractContext, am *amount.Amount, unlockEpoch uint32) {
	total := cont.totalLocked(cc).Add(am)
	cc.SetContractData([]byte{tagTotalLocked}, total.Bytes())

	weighted := cont.weightedUnlock(cc)
	weighted.Add(weighted, big.NewInt(0).Mul(am.Int, big.NewInt(int64(unlockEpoch))))
	cc.SetContractData([]byte{tagWeightedUnlock}, weighted.Bytes())
}

func (cont *EnergyContract) subAggregate(cc *types.ContractContext, am *amount.Amount, unlockEpoch uint32) {
	total := cont.totalLocked(cc).Sub(am)
	if total.IsZero() {
		cc.SetContractData([]byte{tagTotalLocked}, nil)
	} else {
		cc.SetContractData([]byte{tagTotalLocked}, total.Bytes())
	}

	weighted := cont.weightedUnlock(cc)
	weighted.Sub(weighted, big.NewInt(0).Mul(am.Int, big.NewInt(int64(unlockEpoch))))
	if weighted.Sign() == 0 {
		cc.SetContractData([]byte{tagWeightedUnlock}, nil)
	} else {
		cc.SetContractData([]byte{tagWeightedUnlock}, weighted.Bytes())
	}
}

func (cont *EnergyContract) totalLocked(cc types.ContractLoader) *amount.Amount {
	bs := cc.ContractData([]byte{tagTotalLocked})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *EnergyContract) weightedUnlock(cc types.ContractLoader) *big.Int {
	bs := cc.ContractData([]byte{tagWeightedUnlock})
	if len(bs) == 0 {
		return big.NewInt(0)
	}
	return big.NewInt(0).SetBytes(bs)
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Lock pulls Amount of the lock token for LockEpochs epochs. A second
// lock folds into the first with an amount weighted unlock epoch,
// rounded up.
func (cont *EnergyContract) Lock(cc *types.ContractContext, Amount *amount.Amount, LockEpochs uint32) error {
	if !Amount.IsPlus() {
		return errors.Errorf("invalid lock amount %v", Amount.String())
	}
	maxLock := bin.Uint32(cc.ContractData([]byte{tagMaxLockEpochs}))
	if LockEpochs == 0 || LockEpochs > maxLock {
		return errors.Errorf("invalid lock epochs %v", LockEpochs)
	}

	if _, err := cc.Exec(cc, cont.lockToken(cc), "TransferFrom", []interface{}{cc.From(), cont.addr, Amount}); err != nil {
		return err
	}

	current := cont.CurrentEpoch(cc)
	newUnlock := current + LockEpochs

	locked := cont.GetLockedTokens(cc, cc.From())
	oldUnlock := cont.GetUnlockEpoch(cc, cc.From())
	if locked.IsPlus() {
		cont.subAggregate(cc, locked, oldUnlock)
		if oldUnlock > current {
			weighted := big.NewInt(0).Mul(locked.Int, big.NewInt(int64(oldUnlock)))
			weighted.Add(weighted, big.NewInt(0).Mul(Amount.Int, big.NewInt(int64(newUnlock))))
			sum := locked.Add(Amount)
			newUnlock = uint32(farmcore.CeilDiv(weighted, sum.Int).Uint64())
		}
	}

	locked = locked.Add(Amount)
	cc.SetAccountData(cc.From(), []byte{tagLockedAmount}, locked.Bytes())
	cc.SetAccountData(cc.From(), []byte{tagUnlockEpoch}, bin.Uint32Bytes(newUnlock))
	cont.addAggregate(cc, locked, newUnlock)
	return nil
}

// Unlock returns the locked tokens after the unlock epoch passed.
func (cont *EnergyContract) Unlock(cc *types.ContractContext) error {
	locked := cont.GetLockedTokens(cc, cc.From())
	if !locked.IsPlus() {
		return errors.New("nothing locked")
	}
	unlock := cont.GetUnlockEpoch(cc, cc.From())
	if cont.CurrentEpoch(cc) < unlock {
		return errors.Errorf("locked until epoch %v", unlock)
	}

	cont.subAggregate(cc, locked, unlock)
	cc.SetAccountData(cc.From(), []byte{tagLockedAmount}, nil)
	cc.SetAccountData(cc.From(), []byte{tagUnlockEpoch}, nil)

	if _, err := cc.Exec(cc, cont.lockToken(cc), "Transfer", []interface{}{cc.From(), locked}); err != nil {
		return err
	}
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *EnergyContract) CurrentEpoch(cc *types.ContractContext) uint32 {
	return cc.TargetHeight() / bin.Uint32(cc.ContractData([]byte{tagEpochBlocks}))
}

func (cont *EnergyContract) GetLockedTokens(cc types.ContractLoader, user common.Address) *amount.Amount {
	bs := cc.AccountData(user, []byte{tagLockedAmount})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *EnergyContract) GetUnlockEpoch(cc types.ContractLoader, user common.Address) uint32 {
	bs := cc.AccountData(user, []byte{tagUnlockEpoch})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}

// GetUserEnergy is lockedAmount times the epochs left until unlock,
// zero once the lock expired.
func (cont *EnergyContract) GetUserEnergy(cc *types.ContractContext, user common.Address) *big.Int {
	locked := cont.GetLockedTokens(cc, user)
	if !locked.IsPlus() {
		return big.NewInt(0)
	}
	unlock := cont.GetUnlockEpoch(cc, user)
	current := cont.CurrentEpoch(cc)
	if unlock <= current {
		return big.NewInt(0)
	}
	return big.NewInt(0).Mul(locked.Int, big.NewInt(int64(unlock-current)))
}

// GetTotalEnergy derives total energy from the lock aggregates. Expired
// locks that were never withdrawn count negative here, so the result is
// a lower bound and is floored at zero.
func (cont *EnergyContract) GetTotalEnergy(cc *types.ContractContext) *big.Int {
	total := cont.totalLocked(cc)
	if !total.IsPlus() {
		return big.NewInt(0)
	}
	current := big.NewInt(int64(cont.CurrentEpoch(cc)))
	e := cont.weightedUnlock(cc)
	e.Sub(e, big.NewInt(0).Mul(total.Int, current))
	if e.Sign() < 0 {
		return big.NewInt(0)
	}
	return e
}

func (cont *EnergyContract) LockToken(cc types.ContractLoader) common.Address {
	return cont.lockToken(cc)
}

func (cont *EnergyContract) TotalLockedTokens(cc types.ContractLoader) *amount.Amount {
	return cont.totalLocked(cc)
}
