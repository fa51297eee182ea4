package store

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreStatsRepository keeps monthly ranges in "monthlyStats" keyed by
// the composite stats id.
type firestoreStatsRepository struct {
	client *firestore.Client
	logger *logger.Logger
}

func NewFirestoreStatsRepository(client *firestore.Client, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating firestore monthly stats repository")
	return &firestoreStatsRepository{client: client, logger: logger}
}

func (r *firestoreStatsRepository) UpsertBound(ctx context.Context, u models.BoundUpdate) (models.MonthlyStats, error) {
	id := models.StatsID(u.UserID, u.VehicleID, u.Month)
	ref := r.client.Collection(statsCollection).Doc(id)

	var result models.MonthlyStats
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		current := models.MonthlyStats{
			ID:        id,
			UserID:    u.UserID,
			VehicleID: u.VehicleID,
			MonthKey:  u.Month.String(),
		}

		exists := true
		doc, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
			exists = false
		case err != nil:
			return err
		default:
			if err := doc.DataTo(&current); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
		}

		next, changed := applyBound(current, u.Bound, u.Value)
		if exists && !changed {
			result = current
			return nil
		}

		next.Version = current.Version + 1
		next.UpdatedAt = nowUTC()
		result = next
		return tx.Set(ref, next)
	})
	if err != nil {
		return models.MonthlyStats{}, docError(ctx, "*firestoreStatsRepository.UpsertBound", err)
	}

	return result, nil
}

func (r *firestoreStatsRepository) GetStats(ctx context.Context, id string) (models.MonthlyStats, error) {
	doc, err := r.client.Collection(statsCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.MonthlyStats{}, docError(ctx, "*firestoreStatsRepository.GetStats", err)
	}

	var stats models.MonthlyStats
	if err := doc.DataTo(&stats); err != nil {
		return models.MonthlyStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}

func (r *firestoreStatsRepository) ListUserMonth(ctx context.Context, userID string, month models.MonthKey) ([]models.MonthlyStats, error) {
	stats, err := collect[models.MonthlyStats](r.client.Collection(statsCollection).
		Where("userId", "==", userID).
		Where("monthKey", "==", month.String()).
		Documents(ctx))
	if err != nil {
		return nil, docError(ctx, "*firestoreStatsRepository.ListUserMonth", err)
	}

	sortStats(stats)
	return stats, nil
}

func (r *firestoreStatsRepository) ListMonth(ctx context.Context, month models.MonthKey) ([]models.MonthlyStats, error) {
	stats, err := collect[models.MonthlyStats](r.client.Collection(statsCollection).
		Where("monthKey", "==", month.String()).
		Documents(ctx))
	if err != nil {
		return nil, docError(ctx, "*firestoreStatsRepository.ListMonth", err)
	}

	sortStats(stats)
	return stats, nil
}

// applyBound returns s with bound set to value and whether the stored value
// changed.
func applyBound(s models.MonthlyStats, bound models.Bound, value *int64) (models.MonthlyStats, bool) {
	target := &s.InitialKm
	if bound == models.BoundFinal {
		target = &s.FinalKm
	}

	if sameKm(*target, value) {
		return s, false
	}

	if value == nil {
		*target = nil
	} else {
		v := *value
		*target = &v
	}
	return s, true
}

func sameKm(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sortStats(stats []models.MonthlyStats) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].UserID != stats[j].UserID {
			return stats[i].UserID < stats[j].UserID
		}
		return stats[i].VehicleID < stats[j].VehicleID
	})
}
