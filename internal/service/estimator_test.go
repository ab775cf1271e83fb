package service_test

import (
	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/auditscope/scope-planner/internal/service"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// allConfigurations enumerates every style, flag combination and maturity for the given team size.
func allConfigurations(teamSize int) []estimation.Configuration {
	var res []estimation.Configuration
	for _, style := range estimation.Styles() {
		for _, maturity := range estimation.Maturities() {
			for mask := 0; mask < 32; mask++ {
				res = append(res, estimation.Configuration{
					Style:         style,
					UsesZK:        mask&1 != 0,
					UsesFHE:       mask&2 != 0,
					HasBridge:     mask&4 != 0,
					HasGovernance: mask&8 != 0,
					MultiChain:    mask&16 != 0,
					TeamSize:      teamSize,
					Maturity:      maturity,
				})
			}
		}
	}
	return res
}

func days(plan *estimation.Plan, key estimation.TrackKey) int {
	t, ok := plan.Track(key)
	Expect(ok).To(BeTrue(), "missing track %s", key)
	return t.EstimatedDays
}

func indexOf(order []estimation.TrackKey, key estimation.TrackKey) int {
	for i, k := range order {
		if k == key {
			return i
		}
	}
	return -1
}

var _ = Describe("Estimator", func() {
	var estimator *service.Estimator

	compute := func(cfg estimation.Configuration) *estimation.Plan {
		plan, err := estimator.ComputePlan(cfg)
		Expect(err).To(BeNil())
		Expect(plan).NotTo(BeNil())
		return plan
	}

	BeforeEach(func() {
		var err error
		estimator, err = service.NewEstimator(service.WithLogger(zap.NewNop()))
		Expect(err).To(BeNil())
	})

	Describe("ComputePlan", func() {
		Context("plan shape", func() {
			It("echoes the configuration and style profile", func() {
				cfg := estimation.Configuration{
					Style:         estimation.StyleZama,
					UsesFHE:       true,
					HasGovernance: true,
					TeamSize:      4,
					Maturity:      estimation.MaturityIdea,
				}
				plan := compute(cfg)

				Expect(plan.Style).To(Equal(estimation.StyleZama))
				Expect(plan.StyleName).To(Equal("Zama-style FHE compute stack"))
				Expect(plan.StyleDescription).NotTo(BeEmpty())
				Expect(plan.UsesZK).To(BeFalse())
				Expect(plan.UsesFHE).To(BeTrue())
				Expect(plan.HasBridge).To(BeFalse())
				Expect(plan.HasGovernance).To(BeTrue())
				Expect(plan.MultiChain).To(BeFalse())
				Expect(plan.TeamSize).To(Equal(4))
				Expect(plan.Maturity).To(Equal(estimation.MaturityIdea))
			})

			It("lists the tracks in the fixed order", func() {
				plan := compute(estimation.NewConfiguration())
				Expect(plan.Tracks).To(HaveLen(5))
				for i, key := range estimation.TrackKeys() {
					Expect(plan.Tracks[i].Key).To(Equal(key))
					Expect(plan.Tracks[i].Name).NotTo(BeEmpty())
					Expect(plan.Tracks[i].Description).NotTo(BeEmpty())
					Expect(plan.Tracks[i].Breakdown).To(HaveLen(4))
				}
			})

			It("computes the soundness baseline", func() {
				cfg := estimation.NewConfiguration()
				cfg.Style = estimation.StyleSoundness
				plan := compute(cfg)

				// protocol 12 * 1.4, circuits 10 * 1.2, implementation 10 * 1.1, infra 6, governance 4 * 1.3
				Expect(days(plan, estimation.TrackProtocol)).To(Equal(17))
				Expect(days(plan, estimation.TrackCircuits)).To(Equal(12))
				Expect(days(plan, estimation.TrackImplementation)).To(Equal(11))
				Expect(days(plan, estimation.TrackInfra)).To(Equal(6))
				Expect(days(plan, estimation.TrackGovernance)).To(Equal(5))
				Expect(plan.TotalEstimatedDays).To(Equal(51))
				Expect(plan.SuggestedOrder).To(Equal(estimation.TrackKeys()))
			})
		})

		Context("properties", func() {
			It("is deterministic", func() {
				for _, cfg := range allConfigurations(6) {
					Expect(compute(cfg)).To(Equal(compute(cfg)))
				}
			})

			It("keeps every track positive and the total equal to the sum", func() {
				for _, teamSize := range []int{1, 3, 12, 100} {
					for _, cfg := range allConfigurations(teamSize) {
						plan := compute(cfg)
						sum := 0
						for _, t := range plan.Tracks {
							Expect(t.EstimatedDays).To(BeNumerically(">=", 1))
							sum += t.EstimatedDays
						}
						Expect(plan.TotalEstimatedDays).To(Equal(sum))
					}
				}
			})

			It("never decreases an estimate when the team grows", func() {
				for _, cfg := range allConfigurations(1) {
					previous := compute(cfg)
					for _, teamSize := range []int{2, 5, 10, 25, 60} {
						cfg.TeamSize = teamSize
						current := compute(cfg)
						for i := range current.Tracks {
							Expect(current.Tracks[i].EstimatedDays).To(BeNumerically(">=", previous.Tracks[i].EstimatedDays))
						}
						previous = current
					}
				}
			})

			It("never decreases an estimate as the project matures", func() {
				for _, cfg := range allConfigurations(3) {
					if cfg.Maturity != estimation.MaturityIdea {
						continue
					}
					idea := compute(cfg)
					cfg.Maturity = estimation.MaturityPrototype
					prototype := compute(cfg)
					cfg.Maturity = estimation.MaturityMainnet
					mainnet := compute(cfg)

					strictly := false
					for i := range idea.Tracks {
						Expect(prototype.Tracks[i].EstimatedDays).To(BeNumerically(">=", idea.Tracks[i].EstimatedDays))
						Expect(mainnet.Tracks[i].EstimatedDays).To(BeNumerically(">=", prototype.Tracks[i].EstimatedDays))
						if mainnet.Tracks[i].EstimatedDays > idea.Tracks[i].EstimatedDays {
							strictly = true
						}
					}
					Expect(strictly).To(BeTrue())
				}
			})

			It("suggests a valid audit order", func() {
				for _, cfg := range allConfigurations(8) {
					plan := compute(cfg)
					Expect(plan.SuggestedOrder).To(ConsistOf(estimation.TrackKeys()))

					impl := indexOf(plan.SuggestedOrder, estimation.TrackImplementation)
					Expect(indexOf(plan.SuggestedOrder, estimation.TrackProtocol)).To(BeNumerically("<", impl))
					if cfg.UsesZK || cfg.UsesFHE {
						Expect(indexOf(plan.SuggestedOrder, estimation.TrackCircuits)).To(BeNumerically("<", impl))
					}
				}
			})
		})

		Context("scenarios", func() {
			It("raises circuits and protocol for an aztec zk rollup with a bridge", func() {
				baseline := compute(estimation.NewConfiguration())

				cfg := estimation.NewConfiguration()
				cfg.UsesZK = true
				cfg.HasBridge = true
				plan := compute(cfg)

				Expect(days(plan, estimation.TrackCircuits)).To(BeNumerically(">", days(baseline, estimation.TrackCircuits)))
				Expect(days(plan, estimation.TrackProtocol)).To(BeNumerically(">", days(baseline, estimation.TrackProtocol)))
				Expect(plan.TotalEstimatedDays).To(BeNumerically(">", baseline.TotalEstimatedDays))
			})

			It("puts infra and circuits on top for a multi-chain zama FHE stack on mainnet", func() {
				cfg := estimation.Configuration{
					Style:      estimation.StyleZama,
					UsesFHE:    true,
					UsesZK:     true,
					MultiChain: true,
					TeamSize:   10,
					Maturity:   estimation.MaturityMainnet,
				}
				plan := compute(cfg)

				infra := days(plan, estimation.TrackInfra)
				circuits := days(plan, estimation.TrackCircuits)
				for _, key := range []estimation.TrackKey{estimation.TrackProtocol, estimation.TrackImplementation, estimation.TrackGovernance} {
					Expect(infra).To(BeNumerically(">", days(plan, key)))
					Expect(circuits).To(BeNumerically(">", days(plan, key)))
				}

				cfg.TeamSize = 1
				solo := compute(cfg)
				Expect(infra).To(BeNumerically(">=", days(solo, estimation.TrackInfra)))
				Expect(days(plan, estimation.TrackImplementation)).To(BeNumerically(">=", days(solo, estimation.TrackImplementation)))
			})

			It("emphasises protocol and governance for a soundness-first idea", func() {
				cfg := estimation.Configuration{
					Style:         estimation.StyleSoundness,
					HasGovernance: true,
					TeamSize:      1,
					Maturity:      estimation.MaturityIdea,
				}
				soundness := compute(cfg)

				cfg.Style = estimation.StyleAztec
				aztec := compute(cfg)
				Expect(days(soundness, estimation.TrackProtocol)).To(BeNumerically(">", days(aztec, estimation.TrackProtocol)))
				Expect(days(soundness, estimation.TrackGovernance)).To(BeNumerically(">", days(aztec, estimation.TrackGovernance)))

				cfg.Style = estimation.StyleSoundness
				cfg.Maturity = estimation.MaturityMainnet
				mainnet := compute(cfg)
				Expect(soundness.TotalEstimatedDays).To(BeNumerically("<", mainnet.TotalEstimatedDays))
			})
		})

		Context("invalid input", func() {
			DescribeTable("rejects the configuration without a plan",
				func(cfg estimation.Configuration) {
					plan, err := estimator.ComputePlan(cfg)
					Expect(err).NotTo(BeNil())
					Expect(estimation.IsInvalidConfiguration(err)).To(BeTrue())
					Expect(plan).To(BeNil())
				},
				Entry("zero team size", estimation.Configuration{Style: estimation.StyleAztec, TeamSize: 0, Maturity: estimation.MaturityPrototype}),
				Entry("negative team size", estimation.Configuration{Style: estimation.StyleAztec, TeamSize: -2, Maturity: estimation.MaturityPrototype}),
				Entry("unknown style", estimation.Configuration{Style: "starknet", TeamSize: 1, Maturity: estimation.MaturityPrototype}),
				Entry("unknown maturity", estimation.Configuration{Style: estimation.StyleZama, TeamSize: 1, Maturity: "beta"}),
			)
		})
	})

	Describe("NewEstimator", func() {
		It("uses tuned tables", func() {
			tables := estimation.DefaultTables()
			tables.BaseDays[estimation.TrackGovernance] = 40

			tuned, err := service.NewEstimator(service.WithTables(tables))
			Expect(err).To(BeNil())
			plan, err := tuned.ComputePlan(estimation.NewConfiguration())
			Expect(err).To(BeNil())
			Expect(days(plan, estimation.TrackGovernance)).To(Equal(40))
			Expect(plan.SuggestedOrder[0]).To(Equal(estimation.TrackGovernance))
		})

		It("is isolated from later changes to the tables", func() {
			tables := estimation.DefaultTables()
			tuned, err := service.NewEstimator(service.WithTables(tables))
			Expect(err).To(BeNil())

			tables.BaseDays[estimation.TrackGovernance] = 40
			plan, err := tuned.ComputePlan(estimation.NewConfiguration())
			Expect(err).To(BeNil())
			Expect(days(plan, estimation.TrackGovernance)).To(Equal(4))
		})

		It("rejects invalid tables", func() {
			tables := estimation.DefaultTables()
			tables.Maturity[estimation.MaturityIdea] = 1.5

			_, err := service.NewEstimator(service.WithTables(tables))
			Expect(err).NotTo(BeNil())
		})
	})
})
