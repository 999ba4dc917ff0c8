package test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
	"github.com/meverselabs/meverse/contract/token"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/contract/energy"
	"github.com/meverselabs/farms/contract/farm"
	"github.com/meverselabs/farms/contract/farmstaking"
	"github.com/meverselabs/farms/contract/farmtoken"
	"github.com/meverselabs/farms/contract/rewardlocker"
	"github.com/meverselabs/farms/contract/stakingproxy"
	"github.com/meverselabs/farms/farmcore"
	. "github.com/meverselabs/farms/farmutil"
)

func TestFarms(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Farms Suite")
}

var (
	classMap = map[string]uint64{}

	admin               common.Address
	alice, bob, charlie common.Address
	users               []common.Address

	genesis *types.Context
	ctx     *types.Context

	_EpochBlocks = uint32(10)
	_PerBlock    = amount.NewAmount(1, 0)
	_InitialMint = amount.NewAmount(1000000, 0)
	_UserFunds   = amount.NewAmount(10000, 0)
)

var _ = BeforeSuite(func() {
	classID, _ := types.RegisterContractType(&token.TokenContract{})
	classMap["Token"] = classID
	classID, _ = types.RegisterContractType(&farmtoken.FarmTokenContract{})
	classMap["FarmToken"] = classID
	classID, _ = types.RegisterContractType(&energy.EnergyContract{})
	classMap["Energy"] = classID
	classID, _ = types.RegisterContractType(&farm.FarmContract{})
	classMap["Farm"] = classID
	classID, _ = types.RegisterContractType(&farmstaking.StakingFarmContract{})
	classMap["StakingFarm"] = classID
	classID, _ = types.RegisterContractType(&rewardlocker.RewardLockerContract{})
	classMap["RewardLocker"] = classID
	classID, _ = types.RegisterContractType(&stakingproxy.StakingProxyContract{})
	classMap["StakingProxy"] = classID

	_, admin, _, users, _ = Accounts()
	alice, bob, charlie = users[0], users[1], users[2]
})

func mustExec(user common.Address, cont common.Address, method string, args ...interface{}) []interface{} {
	is, err := Exec(ctx, user, cont, method, args)
	ExpectWithOffset(1, err).To(Succeed())
	return is
}

func execErr(user common.Address, cont common.Address, method string, args ...interface{}) error {
	_, err := Exec(ctx, user, cont, method, args)
	return err
}

func tokenBalance(tok common.Address, user common.Address) *amount.Amount {
	return mustExec(admin, tok, "BalanceOf", user)[0].(*amount.Amount)
}

func positionBalance(tok common.Address, user common.Address, nonce uint64) *amount.Amount {
	return mustExec(admin, tok, "BalanceOf", user, nonce)[0].(*amount.Amount)
}

func positionAttributes(tok common.Address, nonce uint64) *farmcore.FarmTokenAttributes {
	bs := mustExec(admin, tok, "Attributes", nonce)[0].([]byte)
	attrs, err := farmcore.FarmTokenAttributesFromBytes(bs)
	ExpectWithOffset(1, err).To(Succeed())
	return attrs
}

func fund(tok common.Address, user common.Address, am *amount.Amount) {
	mustExec(admin, tok, "Transfer", user, am)
}

func approve(tok common.Address, user common.Address, spender common.Address) {
	mustExec(user, tok, "Approve", spender, MaxUint256)
}

func deployToken(name string, symbol string) common.Address {
	construction := &token.TokenContractConstruction{
		Name:   name,
		Symbol: symbol,
		InitialSupplyMap: map[common.Address]*amount.Amount{
			admin: _InitialMint.Clone(),
		},
	}
	bs, _, err := bin.WriterToBytes(construction)
	Expect(err).To(Succeed())
	v, err := ctx.DeployContract(admin, classMap["Token"], bs)
	Expect(err).To(Succeed())
	return v.(*token.TokenContract).Address()
}

func deployFarmToken(name string, symbol string) common.Address {
	construction := &farmtoken.FarmTokenContractConstruction{Name: name, Symbol: symbol}
	bs, _, err := bin.WriterToBytes(construction)
	Expect(err).To(Succeed())
	v, err := ctx.DeployContract(admin, classMap["FarmToken"], bs)
	Expect(err).To(Succeed())
	return v.(*farmtoken.FarmTokenContract).Address()
}

func deployEnergy(lockToken common.Address) common.Address {
	construction := &energy.EnergyContractConstruction{
		LockToken:     lockToken,
		EpochBlocks:   _EpochBlocks,
		MaxLockEpochs: 1000,
	}
	bs, _, err := bin.WriterToBytes(construction)
	Expect(err).To(Succeed())
	v, err := ctx.DeployContract(admin, classMap["Energy"], bs)
	Expect(err).To(Succeed())
	return v.(*energy.EnergyContract).Address()
}

func deployRewardLocker(rewardToken common.Address, lockEpochs uint32) common.Address {
	construction := &rewardlocker.RewardLockerContractConstruction{
		Owner:       admin,
		RewardToken: rewardToken,
		EpochBlocks: _EpochBlocks,
		LockEpochs:  lockEpochs,
	}
	bs, _, err := bin.WriterToBytes(construction)
	Expect(err).To(Succeed())
	v, err := ctx.DeployContract(admin, classMap["RewardLocker"], bs)
	Expect(err).To(Succeed())
	return v.(*rewardlocker.RewardLockerContract).Address()
}

type farmEnv struct {
	farmingToken common.Address
	rewardToken  common.Address
	govToken     common.Address
	posToken     common.Address
	energyAddr   common.Address
	lockerAddr   common.Address
	farmAddr     common.Address
}

type farmOpts struct {
	boostedPct     uint32
	sameToken      bool
	withLocker     bool
	lockEpochs     uint32
	migrationEpoch uint32
}

func deployFarmEnv(opts farmOpts) *farmEnv {
	genesis = types.NewEmptyContext()
	ctx = genesis
	return deployFarm(opts)
}

// deployFarm builds a farm inside the current context so fixtures
// composing several farms can reuse it.
func deployFarm(opts farmOpts) *farmEnv {
	env := &farmEnv{}
	env.farmingToken = deployToken("LpToken", "LP")
	if opts.sameToken {
		env.rewardToken = env.farmingToken
	} else {
		env.rewardToken = deployToken("RewardToken", "RWD")
	}
	env.govToken = deployToken("GovToken", "GOV")
	env.posToken = deployFarmToken("FarmPosition", "FARMPOS")
	env.energyAddr = deployEnergy(env.govToken)
	if opts.withLocker {
		if opts.lockEpochs == 0 {
			opts.lockEpochs = 5
		}
		env.lockerAddr = deployRewardLocker(env.rewardToken, opts.lockEpochs)
	}

	construction := &farm.FarmContractConstruction{
		Owner:                   admin,
		FarmingToken:            env.farmingToken,
		RewardToken:             env.rewardToken,
		FarmToken:               env.posToken,
		EnergyFactory:           env.energyAddr,
		PerBlockReward:          _PerBlock.Clone(),
		EpochBlocks:             _EpochBlocks,
		BoostedYieldsPercentage: opts.boostedPct,
		EnergyConst:             2,
		FarmConst:               1,
		MinWeeksToCollect:       1,
		MinEnergyAmount:         amount.NewAmount(1, 0),
		MinFarmAmount:           amount.NewAmount(1, 0),
		RewardLocker:            env.lockerAddr,
		MigrationEpoch:          opts.migrationEpoch,
	}
	bs, _, err := bin.WriterToBytes(construction)
	Expect(err).To(Succeed())
	v, err := ctx.DeployContract(admin, classMap["Farm"], bs)
	Expect(err).To(Succeed())
	env.farmAddr = v.(*farm.FarmContract).Address()

	mustExec(admin, env.posToken, "SetMinter", env.farmAddr, true)
	if !opts.sameToken {
		mustExec(admin, env.rewardToken, "SetMinter", env.farmAddr, true)
	} else {
		mustExec(admin, env.farmingToken, "SetMinter", env.farmAddr, true)
	}
	if opts.withLocker {
		mustExec(admin, env.lockerAddr, "SetFarm", env.farmAddr, true)
	}
	mustExec(admin, env.farmAddr, "StartProduceRewards")
	return env
}

func (env *farmEnv) fundFarmer(user common.Address) {
	fund(env.farmingToken, user, _UserFunds)
	approve(env.farmingToken, user, env.farmAddr)
}

func (env *farmEnv) enter(user common.Address, am *amount.Amount) uint64 {
	return mustExec(user, env.farmAddr, "EnterFarm", am, []uint64{}, []*amount.Amount{})[0].(uint64)
}

type stakingEnv struct {
	stakingToken common.Address
	govToken     common.Address
	posToken     common.Address
	unbondToken  common.Address
	energyAddr   common.Address
	farmAddr     common.Address
}

func deployStakingEnv(maxApr uint32, topUp *amount.Amount) *stakingEnv {
	genesis = types.NewEmptyContext()
	ctx = genesis
	return deployStakingFarm(maxApr, topUp)
}

// deployStakingFarm builds a staking farm inside the current context so
// fixtures composing several farms can reuse it.
func deployStakingFarm(maxApr uint32, topUp *amount.Amount) *stakingEnv {
	env := &stakingEnv{}
	env.stakingToken = deployToken("StakingToken", "STK")
	env.govToken = deployToken("GovToken", "GOV")
	env.posToken = deployFarmToken("StakePosition", "STKPOS")
	env.unbondToken = deployFarmToken("UnbondPosition", "UNBPOS")
	env.energyAddr = deployEnergy(env.govToken)

	construction := &farmstaking.StakingFarmContractConstruction{
		Owner:                   admin,
		StakingToken:            env.stakingToken,
		FarmToken:               env.posToken,
		UnbondToken:             env.unbondToken,
		EnergyFactory:           env.energyAddr,
		MaxApr:                  maxApr,
		BlocksPerYear:           1000,
		MinUnbondEpochs:         2,
		EpochBlocks:             _EpochBlocks,
		BoostedYieldsPercentage: 0,
		EnergyConst:             2,
		FarmConst:               1,
		MinWeeksToCollect:       1,
		MinEnergyAmount:         amount.NewAmount(1, 0),
		MinFarmAmount:           amount.NewAmount(1, 0),
	}
	bs, _, err := bin.WriterToBytes(construction)
	Expect(err).To(Succeed())
	v, err := ctx.DeployContract(admin, classMap["StakingFarm"], bs)
	Expect(err).To(Succeed())
	env.farmAddr = v.(*farmstaking.StakingFarmContract).Address()

	mustExec(admin, env.posToken, "SetMinter", env.farmAddr, true)
	mustExec(admin, env.unbondToken, "SetMinter", env.farmAddr, true)
	approve(env.stakingToken, admin, env.farmAddr)
	mustExec(admin, env.farmAddr, "TopUpRewards", topUp)
	mustExec(admin, env.farmAddr, "StartProduceRewards")
	return env
}

func (env *stakingEnv) fundStaker(user common.Address) {
	fund(env.stakingToken, user, _UserFunds)
	approve(env.stakingToken, user, env.farmAddr)
}

func (env *stakingEnv) stake(user common.Address, am *amount.Amount) uint64 {
	return mustExec(user, env.farmAddr, "Stake", am, []uint64{}, []*amount.Amount{})[0].(uint64)
}
