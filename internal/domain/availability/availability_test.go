package availability

import (
	"testing"
	"time"

	"gearpool/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return t
}

func datePtr(s string) *time.Time {
	d := date(s)

	return &d
}

func window(start, end string) entity.DateWindow {
	w := entity.DateWindow{}
	if start != "" {
		w.Start = datePtr(start)
	}
	if end != "" {
		w.End = datePtr(end)
	}

	return w
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name       string
		window     entity.DateWindow
		queryStart string
		queryEnd   string
		want       bool
	}{
		{
			name:       "no window is always available",
			window:     entity.DateWindow{},
			queryStart: "2025-01-01",
			queryEnd:   "2025-12-31",
			want:       true,
		},
		{
			name:       "disjoint before",
			window:     window("2025-01-10", "2025-01-20"),
			queryStart: "2025-01-01",
			queryEnd:   "2025-01-09",
			want:       true,
		},
		{
			name:       "disjoint after",
			window:     window("2025-01-10", "2025-01-20"),
			queryStart: "2025-01-21",
			queryEnd:   "2025-01-25",
			want:       true,
		},
		{
			name:       "inclusive boundary touch is busy",
			window:     window("2025-01-10", "2025-01-20"),
			queryStart: "2025-01-20",
			queryEnd:   "2025-01-25",
			want:       false,
		},
		{
			name:       "query contains window",
			window:     window("2025-01-10", "2025-01-20"),
			queryStart: "2025-01-01",
			queryEnd:   "2025-01-31",
			want:       false,
		},
		{
			name:       "window contains query",
			window:     window("2025-01-01", "2025-01-31"),
			queryStart: "2025-01-10",
			queryEnd:   "2025-01-20",
			want:       false,
		},
		{
			name:       "open-ended window, query ends before start",
			window:     window("2025-03-01", ""),
			queryStart: "2025-02-01",
			queryEnd:   "2025-02-28",
			want:       true,
		},
		{
			name:       "open-ended window, query reaches start",
			window:     window("2025-03-01", ""),
			queryStart: "2025-02-28",
			queryEnd:   "2025-03-02",
			want:       false,
		},
		{
			name:       "open-start window, query begins after end",
			window:     window("", "2025-03-01"),
			queryStart: "2025-03-02",
			queryEnd:   "2025-03-10",
			want:       true,
		},
		{
			name:       "open-start window, query begins on end",
			window:     window("", "2025-03-01"),
			queryStart: "2025-03-01",
			queryEnd:   "2025-03-10",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAvailable(tt.window, date(tt.queryStart), date(tt.queryEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlaps_Commutative(t *testing.T) {
	windows := []entity.DateWindow{
		window("2025-01-10", "2025-01-20"),
		window("2025-01-20", "2025-01-25"),
		window("2025-02-01", "2025-02-28"),
		window("2025-01-15", ""),
		window("", "2025-01-12"),
		{},
	}

	for _, a := range windows {
		for _, b := range windows {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a))
		}
	}
}

func TestFilter(t *testing.T) {
	pool := &entity.Location{ID: uuid.New(), Name: "Office", Kind: entity.LocationPool}
	person := &entity.Location{ID: uuid.New(), Name: "Alice", Kind: entity.LocationPerson}
	reservation := &entity.Location{
		ID:     uuid.New(),
		Name:   "Client Barcelona",
		Kind:   entity.LocationReservation,
		Window: window("2025-06-05", "2025-06-15"),
	}

	unprovisioned := &entity.Device{ID: uuid.New(), Name: "Q3-01", Category: "quest3"}
	pooled := &entity.Device{ID: uuid.New(), Name: "Q3-02", Category: "quest3", Location: pool}
	held := &entity.Device{ID: uuid.New(), Name: "Q2-01", Category: "quest2", Location: person}
	reserved := &entity.Device{ID: uuid.New(), Name: "Q3-03", Category: "quest3", Location: reservation}

	devices := []*entity.Device{unprovisioned, pooled, held, reserved}

	t.Run("overlapping range excludes reserved device", func(t *testing.T) {
		got := Filter(devices, date("2025-06-01"), date("2025-06-10"), Options{})
		assert.ElementsMatch(t, []*entity.Device{unprovisioned, pooled, held}, got)
	})

	t.Run("range after reservation includes everything", func(t *testing.T) {
		got := Filter(devices, date("2025-06-16"), date("2025-06-20"), Options{})
		assert.Len(t, got, 4)
	})

	t.Run("require provisioned drops never-assigned devices", func(t *testing.T) {
		got := Filter(devices, date("2025-06-16"), date("2025-06-20"), Options{RequireProvisioned: true})
		assert.NotContains(t, got, unprovisioned)
		assert.Len(t, got, 3)
	})

	t.Run("exclude person held", func(t *testing.T) {
		got := Filter(devices, date("2025-06-16"), date("2025-06-20"), Options{ExcludePersonHeld: true})
		assert.NotContains(t, got, held)
	})

	t.Run("category filter", func(t *testing.T) {
		got := Filter(devices, date("2025-06-16"), date("2025-06-20"), Options{Category: "quest2"})
		assert.Equal(t, []*entity.Device{held}, got)
	})
}

func TestCandidatesForReservation(t *testing.T) {
	reservation := &entity.Location{
		ID:     uuid.New(),
		Name:   "Client Madrid",
		Kind:   entity.LocationReservation,
		Window: window("2025-06-05", "2025-06-15"),
	}
	pool := &entity.Location{ID: uuid.New(), Name: "Office", Kind: entity.LocationPool}

	assigned := &entity.Device{ID: uuid.New(), Name: "Q3-01", Location: reservation}
	free := &entity.Device{ID: uuid.New(), Name: "Q3-02", Location: pool}
	unprovisioned := &entity.Device{ID: uuid.New(), Name: "Q3-03"}

	got := CandidatesForReservation([]*entity.Device{assigned, free, unprovisioned}, reservation)
	require.Len(t, got, 1)
	assert.Equal(t, free, got[0])
}

func TestCandidatesForReservation_IncompleteWindow(t *testing.T) {
	reservation := &entity.Location{
		ID:     uuid.New(),
		Kind:   entity.LocationReservation,
		Window: window("2025-06-05", ""),
	}

	assert.Nil(t, CandidatesForReservation([]*entity.Device{{ID: uuid.New()}}, reservation))
}
