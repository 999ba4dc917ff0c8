package farm

import (
	"math/big"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"
)

func (cont *FarmContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *FarmContract
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (f *front) EnterFarm(cc *types.ContractContext, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	return f.cont.EnterFarm(cc, Amount, nonces, amounts)
}

func (f *front) EnterFarmOnBehalf(cc *types.ContractContext, user common.Address, Amount *amount.Amount, nonces []uint64, amounts []*amount.Amount) (uint64, error) {
	return f.cont.EnterFarmOnBehalf(cc, user, Amount, nonces, amounts)
}

func (f *front) ClaimRewards(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	return f.cont.ClaimRewards(cc, nonce, Amount)
}

func (f *front) ClaimRewardsOnBehalf(cc *types.ContractContext, user common.Address, nonce uint64, Amount *amount.Amount) (uint64, *amount.Amount, error) {
	return f.cont.ClaimRewardsOnBehalf(cc, user, nonce, Amount)
}

func (f *front) CompoundRewards(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (uint64, error) {
	return f.cont.CompoundRewards(cc, nonce, Amount)
}

func (f *front) ExitFarm(cc *types.ContractContext, nonce uint64, Amount *amount.Amount) (*amount.Amount, error) {
	return f.cont.ExitFarm(cc, nonce, Amount)
}

func (f *front) ClaimBoostedRewards(cc *types.ContractContext) (*amount.Amount, error) {
	return f.cont.ClaimBoostedRewards(cc)
}

func (f *front) ClaimBoostedRewardsOnBehalf(cc *types.ContractContext, user common.Address) (*amount.Amount, error) {
	return f.cont.ClaimBoostedRewardsOnBehalf(cc, user)
}

func (f *front) AddToWhitelist(cc *types.ContractContext, addr common.Address) {
	f.cont.AddToWhitelist(cc, addr)
}

func (f *front) RemoveFromWhitelist(cc *types.ContractContext, addr common.Address) {
	f.cont.RemoveFromWhitelist(cc, addr)
}

//////////////////////////////////////////////////
// Owner Functions
//////////////////////////////////////////////////

func (f *front) StartProduceRewards(cc *types.ContractContext) error {
	return f.cont.StartProduceRewards(cc)
}

func (f *front) EndProduceRewards(cc *types.ContractContext) error {
	return f.cont.EndProduceRewards(cc)
}

func (f *front) SetPerBlockRewardAmount(cc *types.ContractContext, perBlock *amount.Amount) error {
	return f.cont.SetPerBlockRewardAmount(cc, perBlock)
}

func (f *front) SetState(cc *types.ContractContext, state uint8) error {
	return f.cont.SetState(cc, state)
}

func (f *front) SetBoostedYieldsPercentage(cc *types.ContractContext, percentage uint32) error {
	return f.cont.SetBoostedYieldsPercentage(cc, percentage)
}

func (f *front) SetMinEnergyAmount(cc *types.ContractContext, min *amount.Amount) error {
	return f.cont.SetMinEnergyAmount(cc, min)
}

func (f *front) SetMinFarmAmount(cc *types.ContractContext, min *amount.Amount) error {
	return f.cont.SetMinFarmAmount(cc, min)
}

func (f *front) Blacklist(cc *types.ContractContext, addr common.Address) error {
	return f.cont.Blacklist(cc, addr)
}

func (f *front) RemoveBlacklist(cc *types.ContractContext, addr common.Address) error {
	return f.cont.RemoveBlacklist(cc, addr)
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

func (f *front) FarmingToken(cc types.ContractLoader) common.Address {
	return f.cont.FarmingToken(cc)
}

func (f *front) RewardToken(cc types.ContractLoader) common.Address {
	return f.cont.RewardToken(cc)
}

func (f *front) FarmToken(cc types.ContractLoader) common.Address {
	return f.cont.FarmToken(cc)
}

func (f *front) EnergyFactory(cc types.ContractLoader) common.Address {
	return f.cont.EnergyFactory(cc)
}

func (f *front) RewardLocker(cc types.ContractLoader) common.Address {
	return f.cont.RewardLocker(cc)
}

func (f *front) MigrationEpoch(cc types.ContractLoader) uint32 {
	return f.cont.MigrationEpoch(cc)
}

func (f *front) PerBlockRewardAmount(cc types.ContractLoader) *amount.Amount {
	return f.cont.PerBlockRewardAmount(cc)
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

func (f *front) TotalEnergyForWeek(cc types.ContractLoader, week uint32) *big.Int {
	return f.cont.TotalEnergyForWeek(cc, week)
}

func (f *front) TotalFarmSupplyForWeek(cc types.ContractLoader, week uint32) *amount.Amount {
	return f.cont.TotalFarmSupplyForWeek(cc, week)
}

func (f *front) HasClaimedBoostedRewards(cc types.ContractLoader, user common.Address, week uint32) bool {
	return f.cont.HasClaimedBoostedRewards(cc, user, week)
}

func (f *front) IsWhitelistedOnBehalf(cc types.ContractLoader, user common.Address, caller common.Address) bool {
	return f.cont.IsWhitelistedOnBehalf(cc, user, caller)
}

func (f *front) IsBlacklisted(cc types.ContractLoader, caller common.Address) bool {
	return f.cont.IsBlacklisted(cc, caller)
}

func (f *front) CalculateRewardsForGivenPosition(cc *types.ContractContext, Amount *amount.Amount, nonce uint64) (*amount.Amount, error) {
	return f.cont.CalculateRewardsForGivenPosition(cc, Amount, nonce)
}
