package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/request"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/apperrors"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/model"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/repository"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/validation"
)

// HerdService handles herd record keeping: creation, edits, sale, and CSV
// import. Editing the daily weight gain records the previous rate and the
// change date so weight projection stays continuous across the change.
type HerdService struct {
	herdRepo *repository.HerdRepository
	logger   *zap.Logger
}

// NewHerdService creates a new HerdService with the provided dependencies.
func NewHerdService(herdRepo *repository.HerdRepository, logger *zap.Logger) *HerdService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HerdService{herdRepo: herdRepo, logger: logger}
}

// GetAllHerds retrieves herds, optionally including sold ones.
func (s *HerdService) GetAllHerds(includeSold bool) ([]model.Herd, error) {
	return s.herdRepo.GetHerds(model.HerdFilter{IncludeSold: includeSold})
}

// GetHerd retrieves a single herd by its ID.
func (s *HerdService) GetHerd(herdID string) (model.Herd, error) {
	return s.herdRepo.GetHerdOnID(herdID)
}

// CreateHerd validates and stores a new herd record. The acquisition date
// defaults to now when absent from the request.
func (s *HerdService) CreateHerd(req request.CreateHerdRequest) (model.Herd, error) {
	if err := validation.ValidateCreateHerd(req); err != nil {
		return model.Herd{}, err
	}

	createdAt := time.Now().UTC()
	if req.CreatedAt != "" {
		parsed, err := validation.ParseDate(req.CreatedAt)
		if err != nil {
			return model.Herd{}, err
		}
		createdAt = parsed
	}

	herd := model.Herd{
		ID:                       uuid.NewString(),
		Name:                     req.Name,
		Species:                  req.Species,
		Breed:                    req.Breed,
		Category:                 req.Category,
		Sex:                      req.Sex,
		HeadCount:                req.HeadCount,
		CreatedAt:                createdAt,
		InitialWeightKg:          req.InitialWeightKg,
		DailyWeightGain:          req.DailyWeightGain,
		UseCreationDateForWeight: req.UseCreationDateForWeight,
		IsBreeder:                req.IsBreeder,
		IsPregnant:               req.IsPregnant,
		PreferredSaleyard:        req.PreferredSaleyard,
	}

	if req.JoinedDate != nil {
		joined, err := validation.ParseDate(*req.JoinedDate)
		if err != nil {
			return model.Herd{}, err
		}
		herd.JoinedDate = &joined
	}
	if req.CalvingRate != nil {
		herd.CalvingRate = *req.CalvingRate
	}

	if err := s.herdRepo.InsertHerd(herd); err != nil {
		return model.Herd{}, err
	}

	s.logger.Info("herd created",
		zap.String("herdId", herd.ID),
		zap.String("species", herd.Species),
		zap.Int("headCount", herd.HeadCount),
	)

	return herd, nil
}

// UpdateHerd applies the provided fields to an existing herd.
func (s *HerdService) UpdateHerd(herdID string, req request.UpdateHerdRequest) (model.Herd, error) {
	herd, err := s.herdRepo.GetHerdOnID(herdID)
	if err != nil {
		return model.Herd{}, err
	}

	if err := validation.ValidateUpdateHerd(req, herd.Species); err != nil {
		return model.Herd{}, err
	}

	if req.Name != nil {
		herd.Name = *req.Name
	}
	if req.Breed != nil {
		herd.Breed = *req.Breed
	}
	if req.Category != nil {
		herd.Category = *req.Category
	}
	if req.Sex != nil {
		herd.Sex = *req.Sex
	}
	if req.HeadCount != nil {
		herd.HeadCount = *req.HeadCount
	}

	if req.DailyWeightGain != nil && *req.DailyWeightGain != herd.DailyWeightGain {
		previous := herd.DailyWeightGain
		changed := time.Now().UTC()
		herd.PreviousDailyWeightGain = &previous
		herd.DWGChangeDate = &changed
		herd.DailyWeightGain = *req.DailyWeightGain
	}

	if req.IsBreeder != nil {
		herd.IsBreeder = *req.IsBreeder
	}
	if req.IsPregnant != nil {
		herd.IsPregnant = *req.IsPregnant
	}
	if req.JoinedDate != nil {
		joined, err := validation.ParseDate(*req.JoinedDate)
		if err != nil {
			return model.Herd{}, err
		}
		herd.JoinedDate = &joined
	}
	if req.CalvingRate != nil {
		herd.CalvingRate = *req.CalvingRate
	}
	if req.PreferredSaleyard != nil {
		herd.PreferredSaleyard = *req.PreferredSaleyard
	}

	if err := s.herdRepo.UpdateHerd(herd); err != nil {
		return model.Herd{}, err
	}

	return herd, nil
}

// SellHerd soft-removes a herd from active valuation by marking it sold.
// Selling an already-sold herd is an error.
func (s *HerdService) SellHerd(herdID string) error {
	herd, err := s.herdRepo.GetHerdOnID(herdID)
	if err != nil {
		return err
	}
	if herd.IsSold {
		return apperrors.ErrHerdAlreadySold
	}

	if err := s.herdRepo.MarkSold(herdID); err != nil {
		return err
	}

	s.logger.Info("herd sold", zap.String("herdId", herdID))
	return nil
}
