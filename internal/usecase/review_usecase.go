package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
)

type ReviewUseCase struct {
	reviewRepo ReviewRepository
}

func NewReviewUC(reviewRepo ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{reviewRepo: reviewRepo}
}

// RatingStats возвращает число отзывов и средний рейтинг по каждому продукту.
// Результат не пагинируется.
func (r *ReviewUseCase) RatingStats(ctx context.Context) ([]domain.RatingStats, error) {
	const op = "ReviewUseCase.RatingStats"

	stats, err := r.reviewRepo.RatingStats(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(stats) == 0 {
		return nil, e.Wrap(op, e.ErrNoRatingStatistics)
	}

	return stats, nil
}
