package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUC
	logger        logger.Logger
}

func NewReviewHandler(reviewUsecase usecase.ReviewUC, logger logger.Logger) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase, logger: logger}
}

// ratingStats
//
//	@Summary		Статистика отзывов
//	@Description	Число отзывов и средний рейтинг по каждому товару. Параметры page и limit игнорируются.
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{array}		RatingStatsResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/reviews/rating-stats [get]
func (h *ReviewHandler) ratingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reviewUsecase.RatingStats(r.Context())
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toRatingStatsResponse(stats))
}
