package storage

import (
	"context"
	"errors"

	"github.com/feedarr/feedarr/pkg/machine"
	"github.com/feedarr/feedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/go-jet/jet/v2/sqlite"
)

var ErrNotFound = errors.New("not found in storage")

// ReleaseStatus classifies a movie release. Non-terminal statuses are
// recomputed on every sync pass; Added and Upgraded are set by external
// action and never leave.
type ReleaseStatus string

const (
	ReleaseStatusNone             ReleaseStatus = ""
	ReleaseStatusNew              ReleaseStatus = "NEW"
	ReleaseStatusIgnored          ReleaseStatus = "IGNORED"
	ReleaseStatusUpgradeCandidate ReleaseStatus = "UPGRADE_CANDIDATE"
	ReleaseStatusAttentionNeeded  ReleaseStatus = "ATTENTION_NEEDED"
	ReleaseStatusAdded            ReleaseStatus = "ADDED"
	ReleaseStatusUpgraded         ReleaseStatus = "UPGRADED"
)

// Terminal reports whether the status must be preserved verbatim on
// subsequent reconciliation passes
func (s ReleaseStatus) Terminal() bool {
	return s == ReleaseStatusAdded || s == ReleaseStatusUpgraded
}

// TvStatus classifies a TV release
type TvStatus string

const (
	TvStatusNone      TvStatus = ""
	TvStatusNewShow   TvStatus = "NEW_SHOW"
	TvStatusNewSeason TvStatus = "NEW_SEASON"
	TvStatusIgnored   TvStatus = "IGNORED"
	TvStatusAdded     TvStatus = "ADDED"
)

// Terminal reports whether the status must be preserved verbatim on
// subsequent reconciliation passes
func (s TvStatus) Terminal() bool {
	return s == TvStatusAdded
}

// Release is the persisted unit of work for a movie feed item
type Release struct {
	model.Release
}

// ReleaseStatus returns the typed status of the record
func (r Release) ReleaseStatus() ReleaseStatus {
	return ReleaseStatus(r.Status)
}

// Machine encodes legal status transitions. Terminal states have no
// outgoing edges.
func (r Release) Machine() *machine.StateMachine[ReleaseStatus] {
	reclassifiable := []ReleaseStatus{
		ReleaseStatusNew,
		ReleaseStatusIgnored,
		ReleaseStatusUpgradeCandidate,
		ReleaseStatusAttentionNeeded,
		ReleaseStatusAdded,
		ReleaseStatusUpgraded,
	}

	return machine.New(ReleaseStatus(r.Status),
		machine.From(ReleaseStatusNone).To(reclassifiable...),
		machine.From(ReleaseStatusNew).To(reclassifiable...),
		machine.From(ReleaseStatusIgnored).To(reclassifiable...),
		machine.From(ReleaseStatusUpgradeCandidate).To(reclassifiable...),
		machine.From(ReleaseStatusAttentionNeeded).To(reclassifiable...),
	)
}

// TvRelease is the persisted unit of work for a TV feed item
type TvRelease struct {
	model.TvRelease
}

// TvStatus returns the typed status of the record
func (r TvRelease) TvStatus() TvStatus {
	return TvStatus(r.Status)
}

// Machine encodes legal status transitions. Added has no outgoing edges.
func (r TvRelease) Machine() *machine.StateMachine[TvStatus] {
	reclassifiable := []TvStatus{
		TvStatusNewShow,
		TvStatusNewSeason,
		TvStatusIgnored,
		TvStatusAdded,
	}

	return machine.New(TvStatus(r.Status),
		machine.From(TvStatusNone).To(reclassifiable...),
		machine.From(TvStatusNewShow).To(reclassifiable...),
		machine.From(TvStatusNewSeason).To(reclassifiable...),
		machine.From(TvStatusIgnored).To(reclassifiable...),
	)
}

type Storage interface {
	ReleaseStorage
	TvReleaseStorage
	ShowStorage
	SyncRunStorage

	// WithTx runs fn against a transactional view of the store. An error
	// from fn rolls the transaction back, otherwise it commits.
	WithTx(ctx context.Context, fn func(Storage) error) error
}

type ReleaseStorage interface {
	GetRelease(ctx context.Context, guid string) (*Release, error)
	UpsertRelease(ctx context.Context, release Release) (int64, error)
	ListReleases(ctx context.Context, where ...sqlite.BoolExpression) ([]*Release, error)
	ListReleasesByStatus(ctx context.Context, status ReleaseStatus) ([]*Release, error)
	UpdateReleaseStatus(ctx context.Context, guid string, status ReleaseStatus) error
}

type TvReleaseStorage interface {
	GetTvRelease(ctx context.Context, guid string) (*TvRelease, error)
	UpsertTvRelease(ctx context.Context, release TvRelease) (int64, error)
	ListTvReleases(ctx context.Context, where ...sqlite.BoolExpression) ([]*TvRelease, error)
	UpdateTvReleaseStatus(ctx context.Context, guid string, status TvStatus) error
}

type ShowStorage interface {
	SaveShow(ctx context.Context, show model.Show) (int64, error)
	ListShows(ctx context.Context) ([]*model.Show, error)
}

type SyncRunStorage interface {
	CreateSyncRun(ctx context.Context, run model.SyncRun) (int64, error)
	FinishSyncRun(ctx context.Context, run model.SyncRun) error
	ListSyncRuns(ctx context.Context, limit int64) ([]*model.SyncRun, error)
}
