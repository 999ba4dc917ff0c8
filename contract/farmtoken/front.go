package farmtoken

import (
	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"
)

func (cont *FarmTokenContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FarmTokenContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount, Attrs []byte) (uint64, error) {
	return f.cont.Mint(cc, To, Amount, Attrs)
}

func (f *front) AddQuantity(cc *types.ContractContext, To common.Address, nonce uint64, Amount *amount.Amount) error {
	return f.cont.AddQuantity(cc, To, nonce, Amount)
}

func (f *front) Burn(cc *types.ContractContext, From common.Address, nonce uint64, Amount *amount.Amount) error {
	return f.cont.Burn(cc, From, nonce, Amount)
}

func (f *front) Transfer(cc *types.ContractContext, To common.Address, nonce uint64, Amount *amount.Amount) error {
	return f.cont.Transfer(cc, To, nonce, Amount)
}

func (f *front) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, nonce uint64, Amount *amount.Amount) error {
	return f.cont.TransferFrom(cc, From, To, nonce, Amount)
}

func (f *front) SetApprovalForAll(cc *types.ContractContext, operator common.Address, is bool) {
	f.cont.SetApprovalForAll(cc, operator, is)
}

func (f *front) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	return f.cont.SetMinter(cc, To, Is)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Name(cc types.ContractLoader) string {
	return f.cont.Name(cc)
}

func (f *front) Symbol(cc types.ContractLoader) string {
	return f.cont.Symbol(cc)
}

func (f *front) NonceCount(cc types.ContractLoader) uint64 {
	return f.cont.NonceCount(cc)
}

func (f *front) BalanceOf(cc types.ContractLoader, from common.Address, nonce uint64) *amount.Amount {
	return f.cont.BalanceOf(cc, from, nonce)
}

func (f *front) SupplyOf(cc types.ContractLoader, nonce uint64) *amount.Amount {
	return f.cont.SupplyOf(cc, nonce)
}

func (f *front) Attributes(cc types.ContractLoader, nonce uint64) ([]byte, error) {
	return f.cont.Attributes(cc, nonce)
}

func (f *front) IsMinter(cc types.ContractLoader, addr common.Address) bool {
	return f.cont.IsMinter(cc, addr)
}

func (f *front) IsApprovedForAll(cc types.ContractLoader, owner common.Address, operator common.Address) bool {
	return f.cont.IsApprovedForAll(cc, owner, operator)
}
