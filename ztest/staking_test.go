package test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/farmcore"
	. "github.com/meverselabs/farms/farmutil"
)

var _ = Describe("Staking farm", func() {
	var env *stakingEnv

	It("accrues the APR bound on the staked supply", func() {
		env = deployStakingEnv(1000, amount.NewAmount(1000, 0))
		env.fundStaker(alice)

		nonce := env.stake(alice, amount.NewAmount(1000, 0))
		ctx = NextBlocks(ctx, 100)

		// 10% APR over a tenth of a year on 1000 staked
		is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
		Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(10, 0))).To(BeTrue())
		Expect(tokenBalance(env.stakingToken, alice).Equal(amount.NewAmount(9010, 0))).To(BeTrue())
	})

	It("never accrues past the topped up reserve", func() {
		env = deployStakingEnv(1000, amount.NewAmount(5, 0))
		env.fundStaker(alice)

		nonce := env.stake(alice, amount.NewAmount(1000, 0))
		ctx = NextBlocks(ctx, 100)

		is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
		Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(5, 0))).To(BeTrue())
		Expect(mustExec(admin, env.farmAddr, "RewardReserve")[0].(*amount.Amount).IsZero()).To(BeTrue())
	})

	It("hands back the principal through an unbond token after the unbond epochs", func() {
		env = deployStakingEnv(1000, amount.NewAmount(1000, 0))
		env.fundStaker(alice)

		nonce := env.stake(alice, amount.NewAmount(1000, 0))
		ctx = NextBlocks(ctx, 100)

		is := mustExec(alice, env.farmAddr, "Unstake", nonce, amount.NewAmount(500, 0))
		unbondNonce := is[0].(uint64)
		Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(5, 0))).To(BeTrue())
		Expect(positionBalance(env.unbondToken, alice, unbondNonce).Equal(amount.NewAmount(500, 0))).To(BeTrue())

		bs := mustExec(admin, env.unbondToken, "Attributes", unbondNonce)[0].([]byte)
		attrs, err := farmcore.UnbondTokenAttributesFromBytes(bs)
		Expect(err).To(Succeed())
		Expect(attrs.UnlockEpoch).To(Equal(uint32(12)))
		Expect(attrs.OriginalOwner).To(Equal(alice))

		err = execErr(alice, env.farmAddr, "Unbond", unbondNonce, amount.NewAmount(500, 0))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unbonding until epoch"))

		ctx = NextBlocks(ctx, 20)

		mustExec(alice, env.farmAddr, "Unbond", unbondNonce, amount.NewAmount(500, 0))
		Expect(tokenBalance(env.stakingToken, alice).Equal(amount.MustParseAmount("9505"))).To(BeTrue())
	})

	It("pays zero on a repeat boosted claim inside the same week", func() {
		env = deployStakingEnv(1000, amount.NewAmount(1000, 0))
		mustExec(admin, env.farmAddr, "SetBoostedYieldsPercentage", uint32(2500))
		env.fundStaker(alice)
		fund(env.govToken, alice, _UserFunds)
		approve(env.govToken, alice, env.energyAddr)

		mustExec(alice, env.energyAddr, "Lock", amount.NewAmount(1000, 0), uint32(100))
		env.stake(alice, amount.NewAmount(1000, 0))
		ctx = NextBlocks(ctx, 100)

		// 25% of the 10 accrued by the APR bound
		is := mustExec(alice, env.farmAddr, "ClaimBoostedRewards")
		Expect(is[0].(*amount.Amount).Equal(amount.MustParseAmount("2.5"))).To(BeTrue())

		is = mustExec(alice, env.farmAddr, "ClaimBoostedRewards")
		Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())
		Expect(tokenBalance(env.stakingToken, alice).Equal(amount.MustParseAmount("9002.5"))).To(BeTrue())
	})

	It("rejects proxy entry points from a caller that is not a proxy", func() {
		env = deployStakingEnv(1000, amount.NewAmount(1000, 0))
		env.fundStaker(alice)

		err := execErr(alice, env.farmAddr, "StakeThroughProxy", alice, amount.NewAmount(100, 0), []uint64{}, []*amount.Amount{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("not a whitelisted proxy"))
	})
})

var _ = Describe("Energy factory", func() {
	var govToken, energyAddr common.Address

	BeforeEach(func() {
		genesis = types.NewEmptyContext()
		ctx = genesis
		govToken = deployToken("GovToken", "GOV")
		energyAddr = deployEnergy(govToken)
		fund(govToken, alice, _UserFunds)
		approve(govToken, alice, energyAddr)
	})

	userEnergy := func(user common.Address) *big.Int {
		return mustExec(admin, energyAddr, "GetUserEnergy", user)[0].(*big.Int)
	}

	It("decays energy linearly towards the unlock epoch", func() {
		mustExec(alice, energyAddr, "Lock", amount.NewAmount(100, 0), uint32(10))
		Expect(userEnergy(alice).Cmp(amount.NewAmount(1000, 0).Int)).To(Equal(0))

		ctx = NextBlocks(ctx, 50)
		Expect(userEnergy(alice).Cmp(amount.NewAmount(500, 0).Int)).To(Equal(0))
	})

	It("folds a second lock into the first with a rounded up unlock epoch", func() {
		mustExec(alice, energyAddr, "Lock", amount.NewAmount(100, 0), uint32(10))
		ctx = NextBlocks(ctx, 50)
		mustExec(alice, energyAddr, "Lock", amount.NewAmount(300, 0), uint32(20))

		// (100*10 + 300*25) / 400 = 21.25, rounded up
		Expect(mustExec(admin, energyAddr, "GetUnlockEpoch", alice)[0].(uint32)).To(Equal(uint32(22)))
		Expect(userEnergy(alice).Cmp(amount.NewAmount(6800, 0).Int)).To(Equal(0))
		Expect(mustExec(admin, energyAddr, "GetTotalEnergy")[0].(*big.Int).Cmp(amount.NewAmount(6800, 0).Int)).To(Equal(0))
	})

	It("releases the lock only after the unlock epoch", func() {
		mustExec(alice, energyAddr, "Lock", amount.NewAmount(100, 0), uint32(10))

		err := execErr(alice, energyAddr, "Unlock")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("locked until epoch"))

		ctx = NextBlocks(ctx, 100)

		mustExec(alice, energyAddr, "Unlock")
		Expect(tokenBalance(govToken, alice).Equal(_UserFunds)).To(BeTrue())
		Expect(userEnergy(alice).Sign()).To(Equal(0))
	})
})
