package manager

import (
	"slices"

	"github.com/feedarr/feedarr/pkg/quality"
	"github.com/feedarr/feedarr/pkg/storage"
)

// ClassifyInput are the reconciliation signals for one movie release
type ClassifyInput struct {
	// Allowed is the admission check result for the parsed release
	Allowed bool
	// HeldMatch reports whether the held-library system already tracks the
	// movie
	HeldMatch bool
	// HasPrimaryID reports whether resolution produced a usable primary id.
	// Downstream systems require it exclusively, a release without one needs
	// an operator.
	HasPrimaryID bool
	// ScoreDelta is candidate score minus held-file score
	ScoreDelta float64
	// SizeDeltaPercent is the candidate size increase over the held file
	SizeDeltaPercent float64
}

// Classify turns reconciliation signals into a release status. Pure decision
// table, terminal preservation is the caller's concern.
func Classify(in ClassifyInput, settings quality.Settings) storage.ReleaseStatus {
	if !in.Allowed {
		return storage.ReleaseStatusIgnored
	}

	if !in.HeldMatch {
		if !in.HasPrimaryID {
			return storage.ReleaseStatusAttentionNeeded
		}
		return storage.ReleaseStatusNew
	}

	if in.ScoreDelta >= settings.UpgradeThreshold && in.SizeDeltaPercent >= settings.MinSizeIncreasePercent {
		return storage.ReleaseStatusUpgradeCandidate
	}

	return storage.ReleaseStatusIgnored
}

// ClassifyShow turns reconciliation signals into a TV release status. A show
// the library does not track is a new show; a tracked show with an unheld
// season is a new season; everything else is already covered.
func ClassifyShow(allowed bool, heldSeasons []int, heldShow bool, season *int) storage.TvStatus {
	if !allowed {
		return storage.TvStatusIgnored
	}

	if !heldShow {
		return storage.TvStatusNewShow
	}

	if season != nil && !slices.Contains(heldSeasons, *season) {
		return storage.TvStatusNewSeason
	}

	return storage.TvStatusIgnored
}
