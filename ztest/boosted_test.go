package test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meverselabs/meverse/common/amount"

	. "github.com/meverselabs/farms/farmutil"
)

var _ = Describe("Boosted yields", func() {
	var env *farmEnv

	BeforeEach(func() {
		env = deployFarmEnv(farmOpts{boostedPct: 2500})
		env.fundFarmer(alice)
		env.fundFarmer(bob)
		fund(env.govToken, alice, _UserFunds)
		approve(env.govToken, alice, env.energyAddr)
	})

	It("splits the emission into base and boosted and pays both to a sole farmer", func() {
		mustExec(alice, env.energyAddr, "Lock", amount.NewAmount(1000, 0), uint32(100))
		nonce := env.enter(alice, amount.NewAmount(1000, 0))

		ctx = NextBlocks(ctx, 100)

		is := mustExec(alice, env.farmAddr, "ClaimRewards", nonce, amount.NewAmount(1000, 0))
		Expect(is[1].(*amount.Amount).Equal(amount.NewAmount(75, 0))).To(BeTrue())

		week := mustExec(admin, env.farmAddr, "CurrentWeek")[0].(uint32)
		Expect(week).To(Equal(uint32(1)))
		Expect(mustExec(admin, env.farmAddr, "RewardsPerWeek", week)[0].(*amount.Amount).Equal(amount.NewAmount(25, 0))).To(BeTrue())

		is = mustExec(alice, env.farmAddr, "ClaimBoostedRewards")
		Expect(is[0].(*amount.Amount).Equal(amount.NewAmount(25, 0))).To(BeTrue())
		Expect(tokenBalance(env.rewardToken, alice).Equal(amount.NewAmount(100, 0))).To(BeTrue())
		Expect(mustExec(admin, env.farmAddr, "RemainingBoostedRewards", week)[0].(*amount.Amount).IsZero()).To(BeTrue())
	})

	It("pays zero on a repeat claim inside the same week", func() {
		mustExec(alice, env.energyAddr, "Lock", amount.NewAmount(1000, 0), uint32(100))
		env.enter(alice, amount.NewAmount(1000, 0))
		ctx = NextBlocks(ctx, 100)

		is := mustExec(alice, env.farmAddr, "ClaimBoostedRewards")
		Expect(is[0].(*amount.Amount).Equal(amount.NewAmount(25, 0))).To(BeTrue())

		is = mustExec(alice, env.farmAddr, "ClaimBoostedRewards")
		Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())
		Expect(tokenBalance(env.rewardToken, alice).Equal(amount.NewAmount(25, 0))).To(BeTrue())
	})

	It("pays nothing to a farmer without energy but still marks the week claimed", func() {
		env.enter(bob, amount.NewAmount(1000, 0))
		ctx = NextBlocks(ctx, 100)

		is := mustExec(bob, env.farmAddr, "ClaimBoostedRewards")
		Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())

		week := mustExec(admin, env.farmAddr, "CurrentWeek")[0].(uint32)
		Expect(mustExec(admin, env.farmAddr, "HasClaimedBoostedRewards", bob, week)[0].(bool)).To(BeTrue())
		Expect(mustExec(bob, env.farmAddr, "ClaimBoostedRewards")[0].(*amount.Amount).IsZero()).To(BeTrue())
	})

	It("weighs the boosted share by energy and farm size and sweeps the rest", func() {
		mustExec(alice, env.energyAddr, "Lock", amount.NewAmount(1000, 0), uint32(100))
		env.enter(alice, amount.NewAmount(500, 0))
		env.enter(bob, amount.NewAmount(500, 0))

		ctx = NextBlocks(ctx, 100)

		// alice holds all energy and half the farm: 25 * (2*1 + 1*1/2) / 3
		is := mustExec(alice, env.farmAddr, "ClaimBoostedRewards")
		Expect(is[0].(*amount.Amount).Equal(amount.MustParseAmount("20.833333333333333333"))).To(BeTrue())

		remaining := mustExec(admin, env.farmAddr, "RemainingBoostedRewards", uint32(1))[0].(*amount.Amount)
		Expect(remaining.Equal(amount.MustParseAmount("4.166666666666666667"))).To(BeTrue())

		// week 1 is still inside the claim window at week 1
		Expect(execErr(admin, env.farmAddr, "CollectUndistributedBoostedRewards", uint32(1))).To(HaveOccurred())

		ctx = NextBlocks(ctx, 40)

		before := tokenBalance(env.rewardToken, admin)
		is = mustExec(admin, env.farmAddr, "CollectUndistributedBoostedRewards", uint32(1))
		Expect(is[0].(*amount.Amount).Equal(remaining)).To(BeTrue())
		Expect(tokenBalance(env.rewardToken, admin).Sub(before).Equal(remaining)).To(BeTrue())
	})
})
