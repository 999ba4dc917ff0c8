package test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meverselabs/meverse/common"
	"github.com/meverselabs/meverse/common/amount"
	"github.com/meverselabs/meverse/common/bin"
	"github.com/meverselabs/meverse/core/types"

	"github.com/meverselabs/farms/contract/stakingproxy"
	"github.com/meverselabs/farms/farmcore"
	. "github.com/meverselabs/farms/farmutil"
)

type dualEnv struct {
	lp        *farmEnv
	st        *stakingEnv
	pair      common.Address
	dualToken common.Address
	proxyAddr common.Address
}

func deployDualEnv() *dualEnv {
	genesis = types.NewEmptyContext()
	ctx = genesis

	env := &dualEnv{}
	env.lp = deployFarm(farmOpts{})
	env.st = deployStakingFarm(1000, amount.NewAmount(1000, 0))

	// half the lp token supply is backed by staking tokens on the pair
	env.pair = users[3]
	fund(env.st.stakingToken, env.pair, amount.NewAmount(500000, 0))

	env.dualToken = deployFarmToken("DualYield", "DUAL")

	construction := &stakingproxy.StakingProxyContractConstruction{
		Owner:          admin,
		LpFarm:         env.lp.farmAddr,
		StakingFarm:    env.st.farmAddr,
		Pair:           env.pair,
		LpToken:        env.lp.farmingToken,
		StakingToken:   env.st.stakingToken,
		LpFarmToken:    env.lp.posToken,
		DualYieldToken: env.dualToken,
	}
	bs, _, err := bin.WriterToBytes(construction)
	Expect(err).To(Succeed())
	v, err := ctx.DeployContract(admin, classMap["StakingProxy"], bs)
	Expect(err).To(Succeed())
	env.proxyAddr = v.(*stakingproxy.StakingProxyContract).Address()

	mustExec(admin, env.dualToken, "SetMinter", env.proxyAddr, true)
	mustExec(admin, env.st.farmAddr, "SetProxy", env.proxyAddr, true)
	return env
}

func dualAttributes(env *dualEnv, nonce uint64) *farmcore.DualYieldTokenAttributes {
	bs := mustExec(admin, env.dualToken, "Attributes", nonce)[0].([]byte)
	attrs, err := farmcore.DualYieldTokenAttributesFromBytes(bs)
	ExpectWithOffset(1, err).To(Succeed())
	return attrs
}

var _ = Describe("Dual yield proxy", func() {
	var env *dualEnv
	var lpNonce uint64

	BeforeEach(func() {
		env = deployDualEnv()
		env.lp.fundFarmer(alice)
		lpNonce = env.lp.enter(alice, amount.NewAmount(1000, 0))
		mustExec(alice, env.lp.farmAddr, "AddToWhitelist", env.proxyAddr)
	})

	It("opens a virtual stake sized by the pair reserve", func() {
		is := mustExec(alice, env.proxyAddr, "StakeDualYield", lpNonce, amount.NewAmount(1000, 0))
		dualNonce := is[0].(uint64)

		Expect(positionBalance(env.dualToken, alice, dualNonce).Equal(amount.NewAmount(1000, 0))).To(BeTrue())

		attrs := dualAttributes(env, dualNonce)
		Expect(attrs.LpFarmTokenNonce).To(Equal(lpNonce))
		Expect(attrs.LpFarmTokenAmount.Equal(amount.NewAmount(1000, 0))).To(BeTrue())
		Expect(attrs.VirtualPosTokenAmount.Equal(amount.NewAmount(500, 0))).To(BeTrue())
		Expect(attrs.OriginalOwner).To(Equal(alice))

		// the virtual position token is held by the proxy
		Expect(positionBalance(env.st.posToken, env.proxyAddr, attrs.VirtualPosTokenNonce).Equal(amount.NewAmount(500, 0))).To(BeTrue())
	})

	It("rejects a stake over somebody else's position", func() {
		err := execErr(bob, env.proxyAddr, "StakeDualYield", lpNonce, amount.NewAmount(1000, 0))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("not the original owner"))
	})

	It("claims both yields in one call", func() {
		dualNonce := mustExec(alice, env.proxyAddr, "StakeDualYield", lpNonce, amount.NewAmount(1000, 0))[0].(uint64)

		ctx = NextBlocks(ctx, 100)

		newDual := mustExec(alice, env.proxyAddr, "ClaimDualYield", dualNonce, amount.NewAmount(1000, 0))[0].(uint64)

		Expect(tokenBalance(env.lp.rewardToken, alice).Equal(amount.NewAmount(100, 0))).To(BeTrue())
		Expect(tokenBalance(env.st.stakingToken, alice).Equal(amount.NewAmount(5, 0))).To(BeTrue())
		Expect(positionBalance(env.dualToken, alice, newDual).Equal(amount.NewAmount(1000, 0))).To(BeTrue())
		Expect(positionBalance(env.dualToken, alice, dualNonce).IsZero()).To(BeTrue())
	})

	It("claims a part of the position and keeps the rest untouched", func() {
		dualNonce := mustExec(alice, env.proxyAddr, "StakeDualYield", lpNonce, amount.NewAmount(1000, 0))[0].(uint64)

		ctx = NextBlocks(ctx, 100)

		newDual := mustExec(alice, env.proxyAddr, "ClaimDualYield", dualNonce, amount.NewAmount(400, 0))[0].(uint64)

		Expect(tokenBalance(env.lp.rewardToken, alice).Equal(amount.NewAmount(40, 0))).To(BeTrue())
		Expect(tokenBalance(env.st.stakingToken, alice).Equal(amount.NewAmount(2, 0))).To(BeTrue())
		Expect(positionBalance(env.dualToken, alice, dualNonce).Equal(amount.NewAmount(600, 0))).To(BeTrue())
		Expect(positionBalance(env.dualToken, alice, newDual).Equal(amount.NewAmount(400, 0))).To(BeTrue())
	})

	It("unwinds the virtual stake and leaves the lp position with the user", func() {
		dualNonce := mustExec(alice, env.proxyAddr, "StakeDualYield", lpNonce, amount.NewAmount(1000, 0))[0].(uint64)

		ctx = NextBlocks(ctx, 100)

		newDual := mustExec(alice, env.proxyAddr, "ClaimDualYield", dualNonce, amount.NewAmount(1000, 0))[0].(uint64)
		newLpNonce := dualAttributes(env, newDual).LpFarmTokenNonce

		is := mustExec(alice, env.proxyAddr, "UnstakeDualYield", newDual, amount.NewAmount(1000, 0))
		Expect(is[0].(*amount.Amount).IsZero()).To(BeTrue())

		// the lp farm position never left the user
		Expect(positionBalance(env.lp.posToken, alice, newLpNonce).Equal(amount.NewAmount(1000, 0))).To(BeTrue())
		mustExec(alice, env.lp.farmAddr, "ExitFarm", newLpNonce, amount.NewAmount(1000, 0))
		Expect(tokenBalance(env.lp.farmingToken, alice).Equal(_UserFunds)).To(BeTrue())
	})
})
