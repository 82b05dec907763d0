package entity

// Display tier names
const (
	TierTourist    = "Tourist"
	TierSurvivor   = "Survivor"
	TierPainHolder = "Pain Holder"
	TierCopeLord   = "Cope Lord"
	TierPeakCope   = "Peak Cope"
)

// TierForCount maps a referral count to its display tier.
// Thresholds are fixed: 0, 1-3, 4-10, 11-25, 26+.
func TierForCount(count int64) string {
	switch {
	case count <= 0:
		return TierTourist
	case count <= 3:
		return TierSurvivor
	case count <= 10:
		return TierPainHolder
	case count <= 25:
		return TierCopeLord
	default:
		return TierPeakCope
	}
}
