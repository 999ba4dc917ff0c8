package rewardlocker

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

// RewardLockerContract books reward tokens minted to it by whitelisted
// farms and releases them to the receiver after the lock period. Locks
// of the same receiver fold into one entry with an amount weighted
// unlock epoch.
type RewardLockerContract struct {
	addr   common.Address
	master common.Address
}

func (cont *RewardLockerContract) Address() common.Address {
	return cont.addr
}

func (cont *RewardLockerContract) Master() common.Address {
	return cont.master
}

func (cont *RewardLockerContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *RewardLockerContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &RewardLockerContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.EpochBlocks == 0 {
		return errors.New("epoch blocks is 0")
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagRewardToken}, data.RewardToken[:])
	cc.SetContractData([]byte{tagEpochBlocks}, bin.Uint32Bytes(data.EpochBlocks))
	cc.SetContractData([]byte{tagLockEpochs}, bin.Uint32Bytes(data.LockEpochs))
	return nil
}

func (cont *RewardLockerContract) OnReward(cc *types.ContractContext, b *types.Block, CountMap map[common.Address]uint32) (map[common.Address]*amount.Amount, error) {
	return nil, nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// LockAndSend books Amount for to. Only whitelisted farms may call it,
// the reward tokens themselves must already sit on the locker.
func (cont *RewardLockerContract) LockAndSend(cc *types.ContractContext, to common.Address, Amount *amount.Amount) error {
	if !cont.IsFarm(cc, cc.From()) {
		return errors.New("caller is not a whitelisted farm")
	}
	if !Amount.IsPlus() {
		return errors.Errorf("invalid lock amount %v", Amount.String())
	}

	unlock := cont.CurrentEpoch(cc) + cont.LockEpochs(cc)
	locked := cont.LockedBalance(cc, to)
	if locked.IsPlus() {
		oldUnlock := cont.UnlockEpoch(cc, to)
		if oldUnlock > unlock {
			unlock = oldUnlock
		} else {
			weighted := big.NewInt(0).Mul(locked.Int, big.NewInt(int64(oldUnlock)))
			weighted.Add(weighted, big.NewInt(0).Mul(Amount.Int, big.NewInt(int64(unlock))))
			unlock = uint32(farmcore.CeilDiv(weighted, locked.Add(Amount).Int).Uint64())
		}
	}
	cc.SetAccountData(to, []byte{tagLockedAmount}, locked.Add(Amount).Bytes())
	cc.SetAccountData(to, []byte{tagUnlockEpoch}, bin.Uint32Bytes(unlock))
	return nil
}

// Redeem pays out the caller's matured locked rewards.
func (cont *RewardLockerContract) Redeem(cc *types.ContractContext) (*amount.Amount, error) {
	user := cc.From()
	locked := cont.LockedBalance(cc, user)
	if !locked.IsPlus() {
		return nil, errors.New("nothing locked")
	}
	unlock := cont.UnlockEpoch(cc, user)
	if cont.CurrentEpoch(cc) < unlock {
		return nil, errors.Errorf("locked until epoch %v", unlock)
	}
	cc.SetAccountData(user, []byte{tagLockedAmount}, nil)
	cc.SetAccountData(user, []byte{tagUnlockEpoch}, nil)
	if _, err := cc.Exec(cc, cont.RewardToken(cc), "Transfer", []interface{}{user, locked}); err != nil {
		return nil, err
	}
	return locked, nil
}

//////////////////////////////////////////////////
// Owner Functions
//////////////////////////////////////////////////

func (cont *RewardLockerContract) SetFarm(cc *types.ContractContext, addr common.Address, is bool) error {
	if cc.From() != cont.Owner(cc) && cc.From() != cont.master {
		return errors.New("ownable: caller is not the owner")
	}
	if is {
		cc.SetContractData(makeAddressKey(tagFarm, addr), []byte{1})
	} else {
		cc.SetContractData(makeAddressKey(tagFarm, addr), nil)
	}
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *RewardLockerContract) Owner(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagOwner}))
	return addr
}

func (cont *RewardLockerContract) RewardToken(cc types.ContractLoader) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tagRewardToken}))
	return addr
}

func (cont *RewardLockerContract) LockEpochs(cc types.ContractLoader) uint32 {
	return bin.Uint32(cc.ContractData([]byte{tagLockEpochs}))
}

func (cont *RewardLockerContract) CurrentEpoch(cc *types.ContractContext) uint32 {
	return cc.TargetHeight() / bin.Uint32(cc.ContractData([]byte{tagEpochBlocks}))
}

func (cont *RewardLockerContract) IsFarm(cc types.ContractLoader, addr common.Address) bool {
	bs := cc.ContractData(makeAddressKey(tagFarm, addr))
	return len(bs) > 0 && bs[0] == 1
}

func (cont *RewardLockerContract) LockedBalance(cc types.ContractLoader, user common.Address) *amount.Amount {
	bs := cc.AccountData(user, []byte{tagLockedAmount})
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *RewardLockerContract) UnlockEpoch(cc types.ContractLoader, user common.Address) uint32 {
	bs := cc.AccountData(user, []byte{tagUnlockEpoch})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint32(bs)
}
