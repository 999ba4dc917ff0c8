package farmcore

import (
	"bytes"
	"io"
	"math/big"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
)

// FarmTokenAttributes is the record sealed into one farm position nonce.
// Positions are never edited in place. Every operation burns the paid
// nonce and mints a new one carrying fresh attributes.
type FarmTokenAttributes struct {
	RewardPerShare    *big.Int
	EnteringEpoch     uint32
	CompoundedReward  *amount.Amount
	CurrentFarmAmount *amount.Amount
	OriginalOwner     common.Address
}

func (s *FarmTokenAttributes) Clone() *FarmTokenAttributes {
	return &FarmTokenAttributes{
		RewardPerShare:    big.NewInt(0).Set(s.RewardPerShare),
		EnteringEpoch:     s.EnteringEpoch,
		CompoundedReward:  s.CompoundedReward.Clone(),
		CurrentFarmAmount: s.CurrentFarmAmount.Clone(),
		OriginalOwner:     s.OriginalOwner,
	}
}

func (s *FarmTokenAttributes) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.BigInt(w, s.RewardPerShare); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint32(w, s.EnteringEpoch); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.CompoundedReward); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.CurrentFarmAmount); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.OriginalOwner); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *FarmTokenAttributes) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.BigInt(r, &s.RewardPerShare); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint32(r, &s.EnteringEpoch); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.CompoundedReward); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.CurrentFarmAmount); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.OriginalOwner); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// Bytes serializes the attributes for storage in a position token.
func (s *FarmTokenAttributes) Bytes() []byte {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// FarmTokenAttributesFromBytes parses an attribute blob minted by a farm.
func FarmTokenAttributesFromBytes(bs []byte) (*FarmTokenAttributes, error) {
	s := &FarmTokenAttributes{}
	if _, err := s.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return s, nil
}

// UnbondTokenAttributes is the record of an unbonding staking position.
type UnbondTokenAttributes struct {
	UnlockEpoch   uint32
	OriginalOwner common.Address
}

func (s *UnbondTokenAttributes) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint32(w, s.UnlockEpoch); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.OriginalOwner); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *UnbondTokenAttributes) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint32(r, &s.UnlockEpoch); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.OriginalOwner); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

func (s *UnbondTokenAttributes) Bytes() []byte {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func UnbondTokenAttributesFromBytes(bs []byte) (*UnbondTokenAttributes, error) {
	s := &UnbondTokenAttributes{}
	if _, err := s.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return s, nil
}

// DualYieldTokenAttributes composes an LP farm position with the virtual
// staking position it backs.
type DualYieldTokenAttributes struct {
	LpFarmTokenNonce      uint64
	LpFarmTokenAmount     *amount.Amount
	VirtualPosTokenNonce  uint64
	VirtualPosTokenAmount *amount.Amount
	OriginalOwner         common.Address
}

func (s *DualYieldTokenAttributes) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint64(w, s.LpFarmTokenNonce); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.LpFarmTokenAmount); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.VirtualPosTokenNonce); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.VirtualPosTokenAmount); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.OriginalOwner); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *DualYieldTokenAttributes) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint64(r, &s.LpFarmTokenNonce); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.LpFarmTokenAmount); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.VirtualPosTokenNonce); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.VirtualPosTokenAmount); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.OriginalOwner); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

func (s *DualYieldTokenAttributes) Bytes() []byte {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func DualYieldTokenAttributesFromBytes(bs []byte) (*DualYieldTokenAttributes, error) {
	s := &DualYieldTokenAttributes{}
	if _, err := s.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return s, nil
}
