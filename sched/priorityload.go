package sched

import "math"

// Scoring and temperature constants for PriorityLoad. RTT quality dominates
// the score; window and inflight terms are log-compressed so large byte
// counts cannot swamp it. The temperature floor keeps some spread even at
// maximum urgency, preventing total starvation of the other paths.
const (
	rttBenefitWeight = 1.0
	windowWeight     = 0.3
	inflightWeight   = 0.3
	temperatureFloor = 0.15
	temperatureSlope = 0.85
)

// PriorityLoad produces a full probability distribution over paths instead
// of a single winner. Paths are scored on relative RTT quality plus
// log-compressed window/inflight terms, then passed through a softmax whose
// temperature is driven by the application's priority hint: urgent data
// concentrates on the best path, low-urgency data spreads load. Works for
// any number of paths.
type PriorityLoad struct{}

// SelectWeights implements Policy for PriorityLoad.
func (pl *PriorityLoad) SelectWeights(paths []PathSnapshot, _ SendContext, hint float64) WeightVector {
	if len(paths) == 0 {
		panic("PriorityLoad.SelectWeights: empty paths")
	}
	k := len(paths)
	if k == 1 {
		return oneHot(1, 0)
	}

	prio := clamp01(hint)

	rttMin, rttMax := math.Inf(1), 0.0
	for _, p := range paths {
		rtt := rttSeconds(p.SmoothedRTT)
		rttMin = math.Min(rttMin, rtt)
		rttMax = math.Max(rttMax, rtt)
	}
	span := math.Max(1e-6, rttMax-rttMin)

	scores := make([]float64, k)
	for i, p := range paths {
		rtt := rttSeconds(p.SmoothedRTT)
		rttBenefit := 1.0 - (rtt-rttMin)/span

		wndTerm := math.Log(1.0 + float64(p.AvailableWindow()))
		inflTerm := math.Log(1.0 + float64(p.BytesInFlight))

		scores[i] = rttBenefitWeight*rttBenefit + windowWeight*wndTerm - inflightWeight*inflTerm
	}

	best := 0
	for i := 1; i < k; i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	// Higher priority compresses the distribution toward the best path.
	temp := math.Max(temperatureFloor, 1.0-temperatureSlope*prio)

	w := make(WeightVector, k)
	sum := 0.0
	for i := 0; i < k; i++ {
		w[i] = math.Exp((scores[i] - scores[best]) / temp)
		sum += w[i]
	}
	if sum <= 0 {
		// Numerical degeneracy; deterministic one-hot fallback.
		return oneHot(k, best)
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}
