package farmtoken

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
	"github.com/meverselabs/meverse/core/types"
)

// FarmTokenContract is a semi fungible position token. Every nonce
// carries one opaque attribute blob set at mint time and a fungible
// balance split across holders. Attribute blobs are immutable, holders
// of a nonce own interchangeable shares of the same position.
type FarmTokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FarmTokenContract) Address() common.Address {
	return cont.addr
}

func (cont *FarmTokenContract) Master() common.Address {
	return cont.master
}

func (cont *FarmTokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *FarmTokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FarmTokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagSftName}, []byte(data.Name))
	cc.SetContractData([]byte{tagSftSymbol}, []byte(data.Symbol))
	return nil
}

func (cont *FarmTokenContract) OnReward(cc *types.ContractContext, b *types.Block, CountMap map[common.Address]uint32) (map[common.Address]*amount.Amount, error) {
	return nil, nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

// addBalance and subBalance move holder balances only. Per nonce supply
// changes on mint and burn alone so transfers cannot retire a nonce.
func (cont *FarmTokenContract) addBalance(cc *types.ContractContext, addr common.Address, nonce uint64, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid amount %v", am.String())
	}
	bal := cont.BalanceOf(cc, addr, nonce)
	cc.SetAccountData(addr, makeNonceKey(tagSftBalance, nonce), bal.Add(am).Bytes())
	return nil
}

func (cont *FarmTokenContract) subBalance(cc *types.ContractContext, addr common.Address, nonce uint64, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid amount %v", am.String())
	}
	bal := cont.BalanceOf(cc, addr, nonce)
	if bal.Less(am) {
		return errors.Errorf("invalid amount %v less then %v", am.String(), bal.String())
	}
	bal = bal.Sub(am)
	if bal.IsZero() {
		cc.SetAccountData(addr, makeNonceKey(tagSftBalance, nonce), nil)
	} else {
		cc.SetAccountData(addr, makeNonceKey(tagSftBalance, nonce), bal.Bytes())
	}
	return nil
}

func (cont *FarmTokenContract) addSupply(cc *types.ContractContext, nonce uint64, am *amount.Amount) {
	supply := cont.SupplyOf(cc, nonce)
	cc.SetContractData(makeNonceKey(tagSftSupply, nonce), supply.Add(am).Bytes())
}

func (cont *FarmTokenContract) subSupply(cc *types.ContractContext, nonce uint64, am *amount.Amount) {
	supply := cont.SupplyOf(cc, nonce).Sub(am)
	if supply.IsZero() {
		cc.SetContractData(makeNonceKey(tagSftSupply, nonce), nil)
		cc.SetContractData(makeNonceKey(tagSftAttributes, nonce), nil)
	} else {
		cc.SetContractData(makeNonceKey(tagSftSupply, nonce), supply.Bytes())
	}
}

func (cont *FarmTokenContract) nextNonce(cc *types.ContractContext) uint64 {
	nonce := cont.NonceCount(cc) + 1
	cc.SetContractData([]byte{tagSftNonceCount}, bin.Uint64Bytes(nonce))
	return nonce
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Mint seals attrs into a fresh nonce and credits the whole supply to To.
func (cont *FarmTokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount, Attrs []byte) (uint64, error) {
	if !cont.IsMinter(cc, cc.From()) {
		return 0, errors.New("not minter")
	}
	if len(Attrs) == 0 {
		return 0, errors.New("empty attributes")
	}
	nonce := cont.nextNonce(cc)
	cc.SetContractData(makeNonceKey(tagSftAttributes, nonce), Attrs)
	if err := cont.addBalance(cc, To, nonce, Amount); err != nil {
		return 0, err
	}
	cont.addSupply(cc, nonce, Amount)
	return nonce, nil
}

// AddQuantity mints additional supply of an existing nonce.
func (cont *FarmTokenContract) AddQuantity(cc *types.ContractContext, To common.Address, nonce uint64, Amount *amount.Amount) error {
	if !cont.IsMinter(cc, cc.From()) {
		return errors.New("not minter")
	}
	if len(cc.ContractData(makeNonceKey(tagSftAttributes, nonce))) == 0 {
		return errors.Errorf("unknown nonce %v", nonce)
	}
	if err := cont.addBalance(cc, To, nonce, Amount); err != nil {
		return err
	}
	cont.addSupply(cc, nonce, Amount)
	return nil
}

// Burn destroys Amount of nonce held by From. Burning the last share of
// a nonce drops its attribute record.
func (cont *FarmTokenContract) Burn(cc *types.ContractContext, From common.Address, nonce uint64, Amount *amount.Amount) error {
	if !cont.IsMinter(cc, cc.From()) {
		return errors.New("not minter")
	}
	if err := cont.subBalance(cc, From, nonce, Amount); err != nil {
		return err
	}
	cont.subSupply(cc, nonce, Amount)
	return nil
}

func (cont *FarmTokenContract) Transfer(cc *types.ContractContext, To common.Address, nonce uint64, Amount *amount.Amount) error {
	if err := cont.subBalance(cc, cc.From(), nonce, Amount); err != nil {
		return err
	}
	return cont.addBalance(cc, To, nonce, Amount)
}

func (cont *FarmTokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, nonce uint64, Amount *amount.Amount) error {
	if cc.From() != From && !cont.IsApprovedForAll(cc, From, cc.From()) {
		return errors.New("not approved")
	}
	if err := cont.subBalance(cc, From, nonce, Amount); err != nil {
		return err
	}
	return cont.addBalance(cc, To, nonce, Amount)
}

func (cont *FarmTokenContract) SetApprovalForAll(cc *types.ContractContext, operator common.Address, is bool) {
	if is {
		cc.SetAccountData(cc.From(), append([]byte{tagSftOperator}, operator[:]...), []byte{1})
	} else {
		cc.SetAccountData(cc.From(), append([]byte{tagSftOperator}, operator[:]...), nil)
	}
}

func (cont *FarmTokenContract) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	if cc.From() != cont.master {
		return errors.New("ownable: caller is not the master")
	}
	if Is {
		cc.SetContractData(append([]byte{tagSftMinter}, To[:]...), []byte{1})
	} else {
		cc.SetContractData(append([]byte{tagSftMinter}, To[:]...), nil)
	}
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *FarmTokenContract) Name(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagSftName}))
}

func (cont *FarmTokenContract) Symbol(cc types.ContractLoader) string {
	return string(cc.ContractData([]byte{tagSftSymbol}))
}

func (cont *FarmTokenContract) NonceCount(cc types.ContractLoader) uint64 {
	bs := cc.ContractData([]byte{tagSftNonceCount})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint64(bs)
}

func (cont *FarmTokenContract) BalanceOf(cc types.ContractLoader, from common.Address, nonce uint64) *amount.Amount {
	bs := cc.AccountData(from, makeNonceKey(tagSftBalance, nonce))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmTokenContract) SupplyOf(cc types.ContractLoader, nonce uint64) *amount.Amount {
	bs := cc.ContractData(makeNonceKey(tagSftSupply, nonce))
	if len(bs) == 0 {
		return amount.NewAmount(0, 0)
	}
	return amount.NewAmountFromBytes(bs)
}

func (cont *FarmTokenContract) Attributes(cc types.ContractLoader, nonce uint64) ([]byte, error) {
	bs := cc.ContractData(makeNonceKey(tagSftAttributes, nonce))
	if len(bs) == 0 {
		return nil, errors.Errorf("unknown nonce %v", nonce)
	}
	return bs, nil
}

func (cont *FarmTokenContract) IsMinter(cc types.ContractLoader, addr common.Address) bool {
	if addr == cont.master {
		return true
	}
	bs := cc.ContractData(append([]byte{tagSftMinter}, addr[:]...))
	return len(bs) > 0 && bs[0] == 1
}

func (cont *FarmTokenContract) IsApprovedForAll(cc types.ContractLoader, owner common.Address, operator common.Address) bool {
	bs := cc.AccountData(owner, append([]byte{tagSftOperator}, operator[:]...))
	return len(bs) > 0 && bs[0] == 1
}
