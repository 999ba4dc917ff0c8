package farmstaking

import (
	"math/big"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"
)

func (cont *StakingFarmContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *StakingFarmContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) Stake(cc *types.ContractContext, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	return f.cont.Stake(cc, Amount, nonces, amounts)
}

func (f *front) StakeThroughProxy(cc *types.ContractContext, user common.Address, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	return f.cont.StakeThroughProxy(cc, user, Amount, nonces, amounts)
}

func (f *front) ClaimRewards(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	return f.cont.ClaimRewards(cc, nonce, Amount)
}

func (f *front) ClaimThroughProxy(cc *types.ContractContext, user common.Address, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	return f.cont.ClaimThroughProxy(cc, user, nonce, Amount)
}

func (f *front) CompoundRewards(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, error) {
	return f.cont.CompoundRewards(cc, nonce, Amount)
}

func (f *front) Unstake(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	return f.cont.Unstake(cc, nonce, Amount)
}

func (f *front) UnstakeThroughProxy(cc *types.ContractContext, user common.Address, nonce uint64, Amount *amount.Amount) (*amount.Amount, error) {
	return f.cont.UnstakeThroughProxy(cc, user, nonce, Amount)
}

func (f *front) Unbond(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) error {
	return f.cont.Unbond(cc, nonce, Amount)
}

func (f *front) ClaimBoostedRewards(cc *types.ContractContext) (*amount.Amount, error) {
	return f.cont.ClaimBoostedRewards(cc)
}

//////////////////////////////////////////////////
// Owner Functions
//////////////////////////////////////////////////

func (f *front) TopUpRewards(cc *types.ContractContext, Amount *amount.Amount) error {
	return f.cont.TopUpRewards(cc, Amount)
}

func (f *front) StartProduceRewards(cc *types.ContractContext) error {
	return f.cont.StartProduceRewards(cc)
}

func (f *front) EndProduceRewards(cc *types.ContractContext) error {
	return f.cont.EndProduceRewards(cc)
}

func (f *front) SetMaxApr(cc *types.ContractContext, maxApr uint32) error {
	return f.cont.SetMaxApr(cc, maxApr)
}

func (f *front) SetMinUnbondEpochs(cc *types.ContractContext, epochs uint32) error {
	return f.cont.SetMinUnbondEpochs(cc, epochs)
}

func (f *front) SetState(cc *types.ContractContext, state uint8) error {
	return f.cont.SetState(cc, state)
}

func (f *front) SetBoostedYieldsPercentage(cc *types.ContractContext, percentage uint32) error {
	return f.cont.SetBoostedYieldsPercentage(cc, percentage)
}

func (f *front) SetProxy(cc *types.ContractContext, addr common.Address, is bool) error {
	return f.cont.SetProxy(cc, addr, is)
}

func (f *front) CollectUndistributedBoostedRewards(cc *types.ContractContext, week uint32) (*amount.Amount, error) {
	return f.cont.CollectUndistributedBoostedRewards(cc, week)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (f *front) Owner(cc types.ContractLoader) common.Address {
	return f.cont.Owner(cc)
}

func (f *front) StakingToken(cc types.ContractLoader) common.Address {
	return f.cont.StakingToken(cc)
}

func (f *front) FarmToken(cc types.ContractLoader) common.Address {
	return f.cont.FarmToken(cc)
}

func (f *front) UnbondToken(cc types.ContractLoader) common.Address {
	return f.cont.UnbondToken(cc)
}

func (f *front) EnergyFactory(cc types.ContractLoader) common.Address {
	return f.cont.EnergyFactory(cc)
}

func (f *front) MaxApr(cc types.ContractLoader) uint32 {
	return f.cont.MaxApr(cc)
}

func (f *front) BlocksPerYear(cc types.ContractLoader) uint32 {
	return f.cont.BlocksPerYear(cc)
}

func (f *front) MinUnbondEpochs(cc types.ContractLoader) uint32 {
	return f.cont.MinUnbondEpochs(cc)
}

func (f *front) RewardPerShare(cc types.ContractLoader) *big.Int {
	return f.cont.RewardPerShare(cc)
}

func (f *front) RewardReserve(cc types.ContractLoader) *amount.Amount {
	return f.cont.RewardReserve(cc)
}

func (f *front) FarmTokenSupply(cc types.ContractLoader) *amount.Amount {
	return f.cont.FarmTokenSupply(cc)
}

func (f *front) LastRewardBlock(cc types.ContractLoader) uint32 {
	return f.cont.LastRewardBlock(cc)
}

func (f *front) ProduceRewardsEnabled(cc types.ContractLoader) bool {
	return f.cont.ProduceRewardsEnabled(cc)
}

func (f *front) State(cc types.ContractLoader) uint8 {
	return f.cont.State(cc)
}

func (f *front) CurrentEpoch(cc *types.ContractContext) uint32 {
	return f.cont.CurrentEpoch(cc)
}

func (f *front) CurrentWeek(cc *types.ContractContext) uint32 {
	return f.cont.CurrentWeek(cc)
}

func (f *front) BoostedYieldsPercentage(cc types.ContractLoader) uint32 {
	return f.cont.BoostedYieldsPercentage(cc)
}

func (f *front) TotalFarmPosition(cc types.ContractLoader, user common.Address) *amount.Amount {
	return f.cont.TotalFarmPosition(cc, user)
}

func (f *front) RewardsPerWeek(cc types.ContractLoader, week uint32) *amount.Amount {
	return f.cont.RewardsPerWeek(cc, week)
}

func (f *front) RemainingBoostedRewards(cc types.ContractLoader, week uint32) *amount.Amount {
	return f.cont.RemainingBoostedRewards(cc, week)
}

func (f *front) HasClaimedBoostedRewards(cc types.ContractLoader, user common.Address, week uint32) bool {
	return f.cont.HasClaimedBoostedRewards(cc, user, week)
}

func (f *front) IsProxy(cc types.ContractLoader, addr common.Address) bool {
	return f.cont.IsProxy(cc, addr)
}

func (f *front) CalculateRewardsForGivenPosition(cc *types.ContractContext, Amount *amount.Amount, nonce uint64) (*amount.Amount, error) {
	return f.cont.CalculateRewardsForGivenPosition(cc, Amount, nonce)
}
