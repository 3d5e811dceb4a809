package physics_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/integrators"
	"github.com/san-kum/gravsim/internal/physics"
)

func newSim(descs []dynamo.Descriptor) *dynamo.Simulator {
	params := dynamo.DefaultParams()
	s, err := dynamo.New(descs, params, physics.NewGravity(params), integrators.NewSymplecticEuler())
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Gravity", func() {
	var g *physics.Gravity

	BeforeEach(func() {
		g = physics.NewGravity(dynamo.DefaultParams())
	})

	DescribeTable("equal masses placed symmetrically feel opposite forces",
		func(halfDistance float64) {
			bodies := []dynamo.Body{
				{Position: mgl64.Vec2{-halfDistance, 0}, Mass: 3e10},
				{Position: mgl64.Vec2{halfDistance, 0}, Mass: 3e10},
			}

			fa := g.NetForce(bodies, 0)
			fb := g.NetForce(bodies, 1)

			Expect(fa.X()).To(BeNumerically(">", 0))
			Expect(fa.X()).To(Equal(-fb.X()))
			Expect(fa.Y()).To(Equal(-fb.Y()))
		},
		Entry("at the cutoff", 2.5),
		Entry("close", 10.0),
		Entry("far", 617.25),
	)

	It("leaves a lone body's velocity untouched", func() {
		s := newSim([]dynamo.Descriptor{{X: 50, Y: 60, VX: 1.5, VY: -2, Mass: 1e12}})
		for i := 0; i < 250; i++ {
			s.Tick()
		}
		Expect(s.Bodies()[0].Velocity).To(Equal(mgl64.Vec2{1.5, -2}))
	})

	It("moves a lone body along a straight line", func() {
		s := newSim([]dynamo.Descriptor{{X: 10, Y: 20, VX: 3, VY: -1.5, Mass: 5}})
		ticks := 50
		for i := 0; i < ticks; i++ {
			s.Tick()
		}

		elapsed := float64(ticks) * dynamo.DefaultTimeStep
		pos := s.Bodies()[0].Position
		Expect(pos.X()).To(BeNumerically("~", 10+3*elapsed, 1e-9))
		Expect(pos.Y()).To(BeNumerically("~", 20-1.5*elapsed, 1e-9))
	})

	Describe("minimum-distance cutoff", func() {
		It("drops pairs just inside the cutoff", func() {
			bodies := []dynamo.Body{
				{Position: mgl64.Vec2{0, 0}, Mass: 1e10},
				{Position: mgl64.Vec2{4.999, 0}, Mass: 1e10},
			}
			Expect(g.NetForce(bodies, 0)).To(Equal(mgl64.Vec2{}))
			Expect(g.NetForce(bodies, 1)).To(Equal(mgl64.Vec2{}))

			g.Accelerate(bodies, dynamo.DefaultTimeStep)
			Expect(g.Skipped()).To(Equal(2))
			Expect(bodies[0].Velocity).To(Equal(mgl64.Vec2{}))
		})

		It("keeps pairs just outside the cutoff", func() {
			bodies := []dynamo.Body{
				{Position: mgl64.Vec2{0, 0}, Mass: 1e10},
				{Position: mgl64.Vec2{5.001, 0}, Mass: 1e10},
			}
			f := g.NetForce(bodies, 0)
			Expect(f.X()).To(BeNumerically(">", 0))
			Expect(math.IsInf(f.X(), 0)).To(BeFalse())
			Expect(math.IsNaN(f.X())).To(BeFalse())
		})
	})

	It("decays with the inverse square of distance", func() {
		force := func(d float64) float64 {
			bodies := []dynamo.Body{
				{Position: mgl64.Vec2{0, 0}, Mass: 2e10},
				{Position: mgl64.Vec2{d, 0}, Mass: 7e10},
			}
			return g.NetForce(bodies, 0).Len()
		}

		near, mid, far := force(20), force(40), force(80)
		Expect(near).To(BeNumerically(">", mid))
		Expect(mid).To(BeNumerically(">", far))
		Expect(mid / near).To(BeNumerically("~", 0.25, 1e-12))
		Expect(far / mid).To(BeNumerically("~", 0.25, 1e-12))
	})

	Describe("sun, earth and mars after one tick", func() {
		var bodies []dynamo.Body

		BeforeEach(func() {
			s := newSim([]dynamo.Descriptor{
				{X: 400, Y: 300, Mass: 5e10},
				{X: 300, Y: 300, Mass: 1e10},
				{X: 200, Y: 300, Mass: 1e10},
			})
			s.Tick()
			bodies = s.Bodies()
		})

		expectVelocity := func(got, want float64) {
			Expect(math.Abs(got-want) / math.Abs(want)).To(BeNumerically("<", 1e-6))
		}

		It("pulls the two light bodies towards increasing x", func() {
			dt := dynamo.DefaultTimeStep
			G := dynamo.DefaultG

			earth := G*5e10/(100*100) - G*1e10/(100*100)
			mars := G*5e10/(200*200) + G*1e10/(100*100)

			Expect(bodies[1].Velocity.X()).To(BeNumerically(">", 0))
			Expect(bodies[2].Velocity.X()).To(BeNumerically(">", 0))
			expectVelocity(bodies[1].Velocity.X(), earth*dt)
			expectVelocity(bodies[2].Velocity.X(), mars*dt)
		})

		It("pulls the heavy body left", func() {
			dt := dynamo.DefaultTimeStep
			G := dynamo.DefaultG

			sun := -(G*1e10/(100*100) + G*1e10/(200*200))

			Expect(bodies[0].Velocity.X()).To(BeNumerically("<", 0))
			expectVelocity(bodies[0].Velocity.X(), sun*dt)
		})

		It("keeps motion on the line of centers", func() {
			for _, b := range bodies {
				Expect(b.Velocity.Y()).To(BeZero())
				Expect(b.Position.Y()).To(Equal(300.0))
			}
		})
	})
})
