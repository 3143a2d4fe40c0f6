package resolve

import (
	"context"
	"errors"
	"fmt"
	"testing"

	mhttp "github.com/feedarr/feedarr/pkg/http"
	"github.com/feedarr/feedarr/pkg/omdb"
	omdbMocks "github.com/feedarr/feedarr/pkg/omdb/mocks"
	"github.com/feedarr/feedarr/pkg/tmdb"
	tmdbMocks "github.com/feedarr/feedarr/pkg/tmdb/mocks"
	searchMocks "github.com/feedarr/feedarr/pkg/websearch/mocks"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}

func TestResolveMovie_CrossValidateAgreement(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().GetMovieDetails(gomock.Any(), 603).Return(&tmdb.MovieDetails{
		ID:     603,
		Title:  "The Matrix",
		ImdbID: nullable.NewNullableWithValue("tt0133093"),
	}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "The Matrix 1999 1080p BluRay x264",
		CleanTitle: "The Matrix",
		Year:       intPtr(1999),
		Existing:   Identifiers{TmdbID: intPtr(603), ImdbID: strPtr("tt0133093")},
	})

	require.NotNil(t, ids.TmdbID)
	assert.Equal(t, 603, *ids.TmdbID)
	require.NotNil(t, ids.ImdbID)
	assert.Equal(t, "tt0133093", *ids.ImdbID)
}

func TestResolveMovie_CrossValidateCorrectsOnYearMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().GetMovieDetails(gomock.Any(), 100).Return(&tmdb.MovieDetails{
		ID:     100,
		ImdbID: nullable.NewNullableWithValue("tt9999999"),
	}, nil)
	primary.EXPECT().FindByImdbID(gomock.Any(), "tt0133093").Return(&tmdb.Movie{
		ID:          603,
		Title:       "The Matrix",
		ReleaseDate: nullable.NewNullableWithValue("1999-03-31"),
	}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "The Matrix",
		CleanTitle: "The Matrix",
		Year:       intPtr(1999),
		Existing:   Identifiers{TmdbID: intPtr(100), ImdbID: strPtr("tt0133093")},
	})

	require.NotNil(t, ids.TmdbID)
	assert.Equal(t, 603, *ids.TmdbID)
}

func TestResolveMovie_CrossValidateKeepsOriginalOnYearMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().GetMovieDetails(gomock.Any(), 100).Return(&tmdb.MovieDetails{
		ID:     100,
		ImdbID: nullable.NewNullableWithValue("tt9999999"),
	}, nil)
	primary.EXPECT().FindByImdbID(gomock.Any(), "tt0133093").Return(&tmdb.Movie{
		ID:          603,
		ReleaseDate: nullable.NewNullableWithValue("1999-03-31"),
	}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "The Matrix",
		CleanTitle: "The Matrix",
		Year:       intPtr(2003),
		Existing:   Identifiers{TmdbID: intPtr(100), ImdbID: strPtr("tt0133093")},
	})

	require.NotNil(t, ids.TmdbID)
	assert.Equal(t, 100, *ids.TmdbID)
}

func TestResolveMovie_ManualPinNeverAltered(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	// mismatch detected but no correction lookup is attempted
	primary.EXPECT().GetMovieDetails(gomock.Any(), 100).Return(&tmdb.MovieDetails{
		ID:     100,
		ImdbID: nullable.NewNullableWithValue("tt9999999"),
	}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "The Matrix",
		CleanTitle: "The Matrix",
		Year:       intPtr(1999),
		Existing: Identifiers{
			TmdbID:       intPtr(100),
			TmdbIDManual: true,
			ImdbID:       strPtr("tt0133093"),
		},
	})

	require.NotNil(t, ids.TmdbID)
	assert.Equal(t, 100, *ids.TmdbID)
	assert.True(t, ids.TmdbIDManual)
}

func TestResolveMovie_DerivesSecondaryFromPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().GetMovieDetails(gomock.Any(), 27205).Return(&tmdb.MovieDetails{
		ID:     27205,
		Title:  "Inception",
		ImdbID: nullable.NewNullableWithValue("tt1375666"),
	}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "Inception",
		CleanTitle: "Inception",
		Existing:   Identifiers{TmdbID: intPtr(27205)},
	})

	require.NotNil(t, ids.ImdbID)
	assert.Equal(t, "tt1375666", *ids.ImdbID)
}

func TestResolveMovie_DerivesPrimaryFromSecondary(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().FindByImdbID(gomock.Any(), "tt1375666").Return(&tmdb.Movie{
		ID:    27205,
		Title: "Inception",
	}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "Inception",
		CleanTitle: "Inception",
		Existing:   Identifiers{ImdbID: strPtr("tt1375666")},
	})

	require.NotNil(t, ids.TmdbID)
	assert.Equal(t, 27205, *ids.TmdbID)
}

func TestResolveMovie_TitleSearchYearGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().SearchMovie(gomock.Any(), "Inception", gomock.Any()).Return(&tmdb.Movie{
		ID:          27205,
		Title:       "Inception",
		ReleaseDate: nullable.NewNullableWithValue("2010-07-16"),
	}, nil)
	primary.EXPECT().GetMovieDetails(gomock.Any(), 27205).Return(&tmdb.MovieDetails{
		ID:     27205,
		ImdbID: nullable.NewNullableWithValue("tt1375666"),
	}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "Inception",
		CleanTitle: "Inception",
		Year:       intPtr(2010),
	})

	require.NotNil(t, ids.TmdbID)
	assert.Equal(t, 27205, *ids.TmdbID)
	require.NotNil(t, ids.ImdbID)
	assert.Equal(t, "tt1375666", *ids.ImdbID)
}

func TestResolveMovie_TitleSearchDiscardsYearMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().SearchMovie(gomock.Any(), "Dune", gomock.Any()).Return(&tmdb.Movie{
		ID:          841,
		Title:       "Dune",
		ReleaseDate: nullable.NewNullableWithValue("1984-12-14"),
	}, nil)
	secondary.EXPECT().SearchByTitle(gomock.Any(), "Dune", gomock.Any()).Return(nil, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "Dune",
		CleanTitle: "Dune",
		Year:       intPtr(2021),
	})

	assert.Nil(t, ids.TmdbID)
	assert.Nil(t, ids.ImdbID)
}

func TestResolveMovie_SecondarySearchFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().SearchMovie(gomock.Any(), "Obscure Film", gomock.Any()).Return(nil, nil)
	primary.EXPECT().SearchMovie(gomock.Any(), "obscure film 2019 web dl", gomock.Any()).Return(nil, nil)
	secondary.EXPECT().SearchByTitle(gomock.Any(), "Obscure Film", gomock.Any()).Return(&omdb.Result{
		ImdbID: "tt7777777",
		Title:  "Obscure Film",
	}, nil)
	primary.EXPECT().FindByImdbID(gomock.Any(), "tt7777777").Return(&tmdb.Movie{ID: 42}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "Obscure.Film.2019.WEB-DL",
		CleanTitle: "Obscure Film",
	})

	require.NotNil(t, ids.ImdbID)
	assert.Equal(t, "tt7777777", *ids.ImdbID)
	require.NotNil(t, ids.TmdbID)
	assert.Equal(t, 42, *ids.TmdbID)
}

func TestResolveMovie_WebSearchLastResort(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)
	search := searchMocks.NewMockSearcher(ctrl)

	primary.EXPECT().SearchMovie(gomock.Any(), "Lost Tape", gomock.Any()).Return(nil, nil)
	primary.EXPECT().SearchMovie(gomock.Any(), "lost tape 720p", gomock.Any()).Return(nil, nil)
	secondary.EXPECT().SearchByTitle(gomock.Any(), "Lost Tape", gomock.Any()).Return(nil, nil)
	search.EXPECT().FindImdbID(gomock.Any(), "Lost Tape").Return("tt5555555", nil)
	primary.EXPECT().FindByImdbID(gomock.Any(), "tt5555555").Return(nil, nil)

	r := New(primary, secondary, WithWebSearch(search))
	ids := r.ResolveMovie(context.Background(), Request{
		Title:      "Lost.Tape.720p",
		CleanTitle: "Lost Tape",
	})

	require.NotNil(t, ids.ImdbID)
	assert.Equal(t, "tt5555555", *ids.ImdbID)
	assert.Nil(t, ids.TmdbID)
}

func TestResolveMovie_RateLimitDisablesProviderForRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	limited := fmt.Errorf("%w after 5 retries", mhttp.ErrRateLimited)

	// the first primary call trips the breaker, no further primary calls
	primary.EXPECT().SearchMovie(gomock.Any(), "First Movie", gomock.Any()).Return(nil, limited)
	secondary.EXPECT().SearchByTitle(gomock.Any(), "First Movie", gomock.Any()).Return(&omdb.Result{ImdbID: "tt0000001"}, nil)
	secondary.EXPECT().SearchByTitle(gomock.Any(), "Second Movie", gomock.Any()).Return(&omdb.Result{ImdbID: "tt0000002"}, nil)

	r := New(primary, secondary)

	first := r.ResolveMovie(context.Background(), Request{Title: "First Movie", CleanTitle: "First Movie"})
	require.NotNil(t, first.ImdbID)
	assert.Equal(t, "tt0000001", *first.ImdbID)
	assert.True(t, r.Limiter().Disabled(ProviderPrimary))

	second := r.ResolveMovie(context.Background(), Request{Title: "Second Movie", CleanTitle: "Second Movie"})
	require.NotNil(t, second.ImdbID)
	assert.Equal(t, "tt0000002", *second.ImdbID)
	assert.Nil(t, second.TmdbID)
}

func TestResolveMovie_SearchMemoizedAcrossCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().SearchMovie(gomock.Any(), "Inception", intPtr(2010)).Return(&tmdb.Movie{
		ID:          27205,
		ReleaseDate: nullable.NewNullableWithValue("2010-07-16"),
	}, nil).Times(1)
	primary.EXPECT().GetMovieDetails(gomock.Any(), 27205).Return(&tmdb.MovieDetails{
		ID:     27205,
		ImdbID: nullable.NewNullableWithValue("tt1375666"),
	}, nil).Times(2)

	r := New(primary, secondary)
	req := Request{Title: "Inception", CleanTitle: "Inception", Year: intPtr(2010)}

	first := r.ResolveMovie(context.Background(), req)
	second := r.ResolveMovie(context.Background(), req)

	require.NotNil(t, first.TmdbID)
	require.NotNil(t, second.TmdbID)
	assert.Equal(t, *first.TmdbID, *second.TmdbID)
}

func TestResolveMovie_ProviderErrorDoesNotAbortChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := tmdbMocks.NewMockClientInterface(ctrl)
	secondary := omdbMocks.NewMockClientInterface(ctrl)

	primary.EXPECT().SearchMovie(gomock.Any(), "Broken", gomock.Any()).Return(nil, errors.New("boom"))
	secondary.EXPECT().SearchByTitle(gomock.Any(), "Broken", gomock.Any()).Return(&omdb.Result{ImdbID: "tt0000003"}, nil)
	primary.EXPECT().FindByImdbID(gomock.Any(), "tt0000003").Return(&tmdb.Movie{ID: 7}, nil)

	r := New(primary, secondary)
	ids := r.ResolveMovie(context.Background(), Request{Title: "Broken", CleanTitle: "Broken"})

	require.NotNil(t, ids.TmdbID)
	assert.Equal(t, 7, *ids.TmdbID)
	assert.False(t, r.Limiter().Disabled(ProviderPrimary))
}

func TestLimiter_Observe(t *testing.T) {
	l := NewLimiter()

	assert.False(t, l.Observe(ProviderPrimary, nil))
	assert.False(t, l.Observe(ProviderPrimary, errors.New("boom")))
	assert.False(t, l.Disabled(ProviderPrimary))

	assert.True(t, l.Observe(ProviderPrimary, fmt.Errorf("%w after 5 retries", mhttp.ErrRateLimited)))
	assert.True(t, l.Disabled(ProviderPrimary))
	assert.False(t, l.Disabled(ProviderSecondary))
}
