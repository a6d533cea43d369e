package playback_test

import (
	"context"
	"errors"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortsim/internal/array"
	"github.com/san-kum/sortsim/internal/gate"
	"github.com/san-kum/sortsim/internal/playback"
	"github.com/san-kum/sortsim/internal/sorting"
)

func newPlayer(values []int, speed int, unit time.Duration) *playback.Player {
	st, err := array.FromValues(values)
	Expect(err).NotTo(HaveOccurred())
	return playback.New(st, gate.New(speed, unit), nil, nil)
}

func randomPlayer(seed int64) (*playback.Player, *array.State) {
	st, err := array.New(array.DefaultSize, array.DefaultMax, array.ShapeRandom, seed)
	Expect(err).NotTo(HaveOccurred())
	return playback.New(st, gate.New(gate.MaxSpeed, 0), nil, nil), st
}

func sortedCopy(in []int) []int {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}

var _ = Describe("Player", func() {
	var ctx context.Context

	BeforeEach(func() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		DeferCleanup(cancel)
	})

	It("shows the seed before any run", func() {
		p := newPlayer([]int{5, 3, 4, 1, 2}, gate.MaxSpeed, 0)
		snap := p.Bridge().Snapshot()
		Expect(snap.Values).To(Equal([]int{5, 3, 4, 1, 2}))
		Expect(snap.Complete).To(BeFalse())
		Expect(p.Bridge().ElapsedSeconds()).To(BeZero())
	})

	DescribeTable("sorts the example seed",
		func(name string) {
			p := newPlayer([]int{5, 3, 4, 1, 2}, gate.MaxSpeed, 0)
			res, err := p.Run(ctx, name)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Values).To(Equal([]int{1, 2, 3, 4, 5}))

			snap := p.Bridge().Snapshot()
			Expect(snap.Complete).To(BeTrue())
			Expect(snap.Values).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(snap.Highlight).To(Equal([2]int{-1, -1}))
		},
		Entry("selection", "Selection"),
		Entry("insertion", "Insertion"),
		Entry("bubble", "Bubble"),
		Entry("merge", "Merge"),
		Entry("quick", "Quick"),
		Entry("heap", "Heap"),
	)

	It("produces the sorted permutation of a random seed for every algorithm", func() {
		p, st := randomPlayer(2024)
		want := sortedCopy(st.Seed())
		for _, alg := range p.Algorithms() {
			res, err := p.Run(ctx, alg.Name)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Values).To(Equal(want), alg.Name)
			Expect(res.Values).To(HaveLen(array.DefaultSize))
		}
	})

	It("is deterministic across re-runs of the same seed", func() {
		p, _ := randomPlayer(77)
		first, err := p.Run(ctx, "heap")
		Expect(err).NotTo(HaveOccurred())
		second, err := p.Run(ctx, "heap")
		Expect(err).NotTo(HaveOccurred())
		Expect(second.Values).To(Equal(first.Values))
		Expect(second.Steps).To(Equal(first.Steps))
		Expect(second.Session).NotTo(Equal(first.Session))
	})

	It("sorts an already sorted seed with quick sort", func() {
		st, err := array.New(array.DefaultSize, array.DefaultMax, array.ShapeSorted, 5)
		Expect(err).NotTo(HaveOccurred())
		p := playback.New(st, gate.New(gate.MaxSpeed, 0), nil, nil)

		res, err := p.Run(ctx, "quick")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Values).To(Equal(st.Seed()))
		Expect(slices.IsSorted(res.Values)).To(BeTrue())
	})

	It("rejects unknown algorithms without touching the frame", func() {
		p := newPlayer([]int{3, 2, 1}, gate.MaxSpeed, 0)
		before := p.Bridge().Snapshot()

		err := p.Start("bogo")
		Expect(errors.Is(err, sorting.ErrUnknownAlgorithm)).To(BeTrue())
		Expect(p.Bridge().Snapshot()).To(Equal(before))
		Expect(p.Bridge().Running()).To(BeFalse())
	})

	It("freezes the frame while paused and resumes to completion", func() {
		seed := make([]int, 30)
		for i := range seed {
			seed[i] = len(seed) - i
		}
		p := newPlayer(seed, gate.MaxSpeed, time.Millisecond)
		Expect(p.Start("bubble")).To(Succeed())

		Eventually(func() int { return p.Bridge().Snapshot().Steps }).Should(BeNumerically(">", 10))
		p.Gate().Pause()
		Eventually(p.Gate().Parked).Should(BeTrue())

		frozen := p.Bridge().Snapshot()
		Consistently(func() uint64 { return p.Bridge().Snapshot().Version }, 50*time.Millisecond, 5*time.Millisecond).
			Should(Equal(frozen.Version))
		Expect(p.Bridge().Snapshot().Values).To(Equal(frozen.Values))
		Expect(frozen.Complete).To(BeFalse())

		p.Gate().Resume()
		Expect(p.Wait(ctx)).To(Succeed())
		snap := p.Bridge().Snapshot()
		Expect(snap.Complete).To(BeTrue())
		Expect(snap.Values).To(Equal(sortedCopy(seed)))
	})

	It("does not deadlock when pause and resume happen before the first step", func() {
		p := newPlayer([]int{5, 3, 4, 1, 2}, gate.MaxSpeed, time.Microsecond)
		p.Gate().SetSpeed(1)
		p.Gate().Toggle()
		p.Gate().Toggle()

		res, err := p.Run(ctx, "selection")
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Values).To(Equal([]int{1, 2, 3, 4, 5}))
	})

	It("supersedes a paused run when a new one starts", func() {
		p, st := randomPlayer(3)
		p.Gate().Pause()
		Expect(p.Start("selection")).To(Succeed())
		Eventually(p.Gate().Parked).Should(BeTrue())
		first := p.Bridge().Snapshot().Session

		p.Gate().Resume()
		Expect(p.Start("merge")).To(Succeed())
		Expect(p.Wait(ctx)).To(Succeed())

		snap := p.Bridge().Snapshot()
		Expect(snap.Session).NotTo(Equal(first))
		Expect(snap.Algorithm).To(Equal("Merge Sort"))
		Expect(snap.Complete).To(BeTrue())
		Expect(snap.Values).To(Equal(sortedCopy(st.Seed())))
	})

	It("cancels a parked run on Stop and reports it as superseded", func() {
		p, _ := randomPlayer(8)
		p.Gate().Pause()
		DeferCleanup(p.Gate().Resume)

		errc := make(chan error, 1)
		go func() {
			_, err := p.Run(ctx, "insertion")
			errc <- err
		}()

		Eventually(p.Gate().Parked).Should(BeTrue())
		p.Stop()

		var err error
		Eventually(errc).Should(Receive(&err))
		Expect(errors.Is(err, playback.ErrSuperseded)).To(BeTrue())
		Expect(p.Gate().Parked()).To(BeFalse())
		Expect(p.Bridge().Snapshot().Complete).To(BeFalse())
		Expect(p.Bridge().Running()).To(BeFalse())
	})

	It("stops the run when the Run context is cancelled", func() {
		p, _ := randomPlayer(21)
		p.Gate().Pause()
		DeferCleanup(p.Gate().Resume)

		runCtx, cancel := context.WithCancel(ctx)
		errc := make(chan error, 1)
		go func() {
			_, err := p.Run(runCtx, "heap")
			errc <- err
		}()

		Eventually(p.Gate().Parked).Should(BeTrue())
		cancel()

		var err error
		Eventually(errc).Should(Receive(&err))
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(p.Gate().Parked()).To(BeFalse())
	})

	It("keeps elapsed time running and then freezes it", func() {
		p := newPlayer([]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, gate.MaxSpeed, time.Millisecond)
		p.Gate().SetSpeed(91)
		Expect(p.Start("bubble")).To(Succeed())

		Eventually(p.Bridge().ElapsedSeconds).Should(BeNumerically(">", 0))
		Expect(p.Wait(ctx)).To(Succeed())

		final := p.Bridge().Elapsed()
		Expect(final).To(BeNumerically(">=", 45*10*time.Millisecond))
		Consistently(p.Bridge().Elapsed, 20*time.Millisecond).Should(Equal(final))
	})

	It("takes longer at speed 1 than at speed 100", func() {
		measure := func(speed int) time.Duration {
			p := newPlayer([]int{8, 7, 6, 5, 4, 3, 2, 1}, speed, 50*time.Microsecond)
			res, err := p.Run(ctx, "insertion")
			Expect(err).NotTo(HaveOccurred())
			return res.Elapsed
		}
		Expect(measure(1)).To(BeNumerically(">=", measure(100)))
	})

	It("shows a fresh seed after Randomize", func() {
		p, st := randomPlayer(99)
		_, err := p.Run(ctx, "quick")
		Expect(err).NotTo(HaveOccurred())

		p.Randomize()
		snap := p.Bridge().Snapshot()
		Expect(snap.Complete).To(BeFalse())
		Expect(snap.Algorithm).To(BeEmpty())
		Expect(snap.Values).To(Equal(st.Seed()))
		Expect(p.Bridge().ElapsedSeconds()).To(BeZero())
	})
})
