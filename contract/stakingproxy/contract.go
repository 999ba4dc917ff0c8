package stakingproxy

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
)

// StakingProxyContract composes an LP farm position with a virtual
// staking farm position so the same liquidity earns both yields. The
// staking side of the pair backs a virtual stake opened through the
// staking farm's proxy entry points, both positions are tracked by one
// dual yield token. The LP farm position itself stays with the user,
// who must whitelist the proxy on the LP farm.
type StakingProxyContract struct {
	addr   common.Address
	master common.Address
}

func (cont *StakingProxyContract) Address() common.Address {
	return cont.addr
}

func (cont *StakingProxyContract) Master() common.Address {
	return cont.master
}

func (cont *StakingProxyContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *StakingProxyContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &StakingProxyContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	cc.SetContractData([]byte{tagLpFarm}, data.LpFarm[:])
	cc.SetContractData([]byte{tagStakingFarm}, data.StakingFarm[:])
	cc.SetContractData([]byte{tagPair}, data.Pair[:])
	cc.SetContractData([]byte{tagLpToken}, data.LpToken[:])
	cc.SetContractData([]byte{tagStakingToken}, data.StakingToken[:])
	cc.SetContractData([]byte{tagLpFarmToken}, data.LpFarmToken[:])
	cc.SetContractData([]byte{tagDualYieldToken}, data.DualYieldToken[:])
	return nil
}

func (cont *StakingProxyContract) OnReward(cc *types.ContractContext, b *types.Block, CountMap map[common.Address]uint32) (map[common.Address]*amount.Amount, error) {
	return nil, nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *StakingProxyContract) address(cc types.ContractLoader, tag byte) common.Address {
	var addr common.Address
	copy(addr[:], cc.ContractData([]byte{tag}))
	return addr
}

func (cont *StakingProxyContract) execAmount(cc *types.ContractContext, to common.Address, method string, args []interface{}) (*amount.Amount, error) {
	ins, err := cc.Exec(cc, to, method, args)
	if err != nil {
		return nil, err
	}
	am, ok := ins[0].(*amount.Amount)
	if !ok {
		return nil, errors.Errorf("%v did not return an amount", method)
	}
	return am, nil
}

func (cont *StakingProxyContract) loadDualAttributes(cc *types.ContractContext, nonce uint64) (*farmcore.DualYieldTokenAttributes, error) {
	ins, err := cc.Exec(cc, cont.DualYieldToken(cc), "Attributes", []interface{}{nonce})
	if err != nil {
		return nil, err
	}
	bs, ok := ins[0].([]byte)
	if !ok {
		return nil, errors.New("attributes is not bytes")
	}
	return farmcore.DualYieldTokenAttributesFromBytes(bs)
}

func (cont *StakingProxyContract) mintDual(cc *types.ContractContext, to common.Address, attrs *farmcore.DualYieldTokenAttributes) (uint64, error) {
	ins, err := cc.Exec(cc, cont.DualYieldToken(cc), "Mint", []interface{}{to, attrs.LpFarmTokenAmount, attrs.Bytes()})
	if err != nil {
		return 0, err
	}
	nonce, ok := ins[0].(uint64)
	if !ok {
		return 0, errors.New("nonce is not uint64")
	}
	return nonce, nil
}

// dualParts splits a dual position payment into its LP and virtual
// stake parts. The virtual part floors, dust stays on the books.
func dualParts(attrs *farmcore.DualYieldTokenAttributes, am *amount.Amount) (*amount.Amount, *amount.Amount, error) {
	if !am.IsPlus() {
		return nil, nil, errors.Errorf("invalid amount %v", am.String())
	}
	if attrs.LpFarmTokenAmount.Less(am) {
		return nil, nil, errors.New("amount exceeds dual position")
	}
	virt := big.NewInt(0).Mul(attrs.VirtualPosTokenAmount.Int, am.Int)
	virt.Div(virt, attrs.LpFarmTokenAmount.Int)
	return am.Clone(), &amount.Amount{Int: virt}, nil
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// StakeDualYield opens a virtual staking position backing Amount of the
// caller's LP farm position and mints a dual yield token for the pair
// of them.
func (cont *StakingProxyContract) StakeDualYield(cc *types.ContractContext, lpFarmNonce uint64, Amount *amount.Amount) (uint64, error) {
	if !Amount.IsPlus() {
		return 0, errors.Errorf("invalid stake amount %v", Amount.String())
	}
	user := cc.From()

	ins, err := cc.Exec(cc, cont.LpFarmToken(cc), "Attributes", []interface{}{lpFarmNonce})
	if err != nil {
		return 0, err
	}
	bs, ok := ins[0].([]byte)
	if !ok {
		return 0, errors.New("attributes is not bytes")
	}
	lpAttrs, err := farmcore.FarmTokenAttributesFromBytes(bs)
	if err != nil {
		return 0, err
	}
	if lpAttrs.OriginalOwner != user {
		return 0, errors.New("not the original owner")
	}
	balance, err := cont.execAmount(cc, cont.LpFarmToken(cc), "BalanceOf", []interface{}{user, lpFarmNonce})
	if err != nil {
		return 0, err
	}
	if balance.Less(Amount) {
		return 0, errors.New("insufficient lp farm position")
	}

	equivalent, err := cont.StakingEquivalent(cc, Amount)
	if err != nil {
		return 0, err
	}
	if !equivalent.IsPlus() {
		return 0, errors.New("lp amount too small to back a stake")
	}

	ins, err = cc.Exec(cc, cont.StakingFarm(cc), "StakeThroughProxy", []interface{}{user, equivalent, []uint64{}, []*amount.Amount{}})
	if err != nil {
		return 0, err
	}
	virtualNonce, ok := ins[0].(uint64)
	if !ok {
		return 0, errors.New("nonce is not uint64")
	}

	return cont.mintDual(cc, user, &farmcore.DualYieldTokenAttributes{
		LpFarmTokenNonce:      lpFarmNonce,
		LpFarmTokenAmount:     Amount.Clone(),
		VirtualPosTokenNonce:  virtualNonce,
		VirtualPosTokenAmount: equivalent,
		OriginalOwner:         user,
	})
}

// ClaimDualYield claims both underlying farms for Amount of the dual
// position and reissues the dual token over the reissued underlying
// nonces.
func (cont *StakingProxyContract) ClaimDualYield(cc *types.ContractContext, dualNonce uint64, Amount *amount.Amount) (uint64, error) {
	user := cc.From()
	attrs, err := cont.loadDualAttributes(cc, dualNonce)
	if err != nil {
		return 0, err
	}
	if attrs.OriginalOwner != user {
		return 0, errors.New("not the original owner")
	}
	lpAmt, virtAmt, err := dualParts(attrs, Amount)
	if err != nil {
		return 0, err
	}
	if _, err := cc.Exec(cc, cont.DualYieldToken(cc), "Burn", []interface{}{user, dualNonce, Amount}); err != nil {
		return 0, err
	}

	ins, err := cc.Exec(cc, cont.LpFarm(cc), "ClaimRewardsOnBehalf", []interface{}{user, attrs.LpFarmTokenNonce, lpAmt})
	if err != nil {
		return 0, err
	}
	newLpNonce, ok := ins[0].(uint64)
	if !ok {
		return 0, errors.New("nonce is not uint64")
	}

	newVirtualNonce := attrs.VirtualPosTokenNonce
	if virtAmt.IsPlus() {
		ins, err = cc.Exec(cc, cont.StakingFarm(cc), "ClaimThroughProxy", []interface{}{user, attrs.VirtualPosTokenNonce, virtAmt})
		if err != nil {
			return 0, err
		}
		if newVirtualNonce, ok = ins[0].(uint64); !ok {
			return 0, errors.New("nonce is not uint64")
		}
	}

	return cont.mintDual(cc, user, &farmcore.DualYieldTokenAttributes{
		LpFarmTokenNonce:      newLpNonce,
		LpFarmTokenAmount:     lpAmt,
		VirtualPosTokenNonce:  newVirtualNonce,
		VirtualPosTokenAmount: virtAmt,
		OriginalOwner:         user,
	})
}

// UnstakeDualYield closes Amount of the dual position. The virtual
// stake is unwound with its reward paid out, the LP farm position
// remains with the user to exit directly.
func (cont *StakingProxyContract) UnstakeDualYield(cc *types.ContractContext, dualNonce uint64, Amount *amount.Amount) (*amount.Amount, error) {
	user := cc.From()
	attrs, err := cont.loadDualAttributes(cc, dualNonce)
	if err != nil {
		return nil, err
	}
	if attrs.OriginalOwner != user {
		return nil, errors.New("not the original owner")
	}
	_, virtAmt, err := dualParts(attrs, Amount)
	if err != nil {
		return nil, err
	}
	if _, err := cc.Exec(cc, cont.DualYieldToken(cc), "Burn", []interface{}{user, dualNonce, Amount}); err != nil {
		return nil, err
	}
	if !virtAmt.IsPlus() {
		return amount.NewAmount(0, 0), nil
	}
	return cont.execAmount(cc, cont.StakingFarm(cc), "UnstakeThroughProxy", []interface{}{user, attrs.VirtualPosTokenNonce, virtAmt})
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

// StakingEquivalent converts an LP amount to the staking token it
// represents, read off the pair's reserve.
func (cont *StakingProxyContract) StakingEquivalent(cc *types.ContractContext, lpAmount *amount.Amount) (*amount.Amount, error) {
	reserve, err := cont.execAmount(cc, cont.StakingToken(cc), "BalanceOf", []interface{}{cont.Pair(cc)})
	if err != nil {
		return nil, err
	}
	lpSupply, err := cont.execAmount(cc, cont.LpToken(cc), "TotalSupply", []interface{}{})
	if err != nil {
		return nil, err
	}
	if lpSupply.IsZero() {
		return nil, errors.New("lp token supply is 0")
	}
	staked := big.NewInt(0).Mul(lpAmount.Int, reserve.Int)
	staked.Div(staked, lpSupply.Int)
	return &amount.Amount{Int: staked}, nil
}

func (cont *StakingProxyContract) Owner(cc types.ContractLoader) common.Address {
	return cont.address(cc, tagOwner)
}

func (cont *StakingProxyContract) LpFarm(cc types.ContractLoader) common.Address {
	return cont.address(cc, tagLpFarm)
}

func (cont *StakingProxyContract) StakingFarm(cc types.ContractLoader) common.Address {
	return cont.address(cc, tagStakingFarm)
}

func (cont *StakingProxyContract) Pair(cc types.ContractLoader) common.Address {
	return cont.address(cc, tagPair)
}

func (cont *StakingProxyContract) LpToken(cc types.ContractLoader) common.Address {
	return cont.address(cc, tagLpToken)
}

func (cont *StakingProxyContract) StakingToken(cc types.ContractLoader) common.Address {
	return cont.address(cc, tagStakingToken)
}

func (cont *StakingProxyContract) LpFarmToken(cc types.ContractLoader) common.Address {
	return cont.address(cc, tagLpFarmToken)
}

func (cont *StakingProxyContract) DualYieldToken(cc types.ContractLoader) common.Address {
	return cont.address(cc, tagDualYieldToken)
}
