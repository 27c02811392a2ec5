package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/app/repositories"
)

// WorkOrderService defines the interface for IT work order operations
type WorkOrderService interface {
	GetAllWorkOrders(ctx context.Context) ([]models.WorkOrder, error)
	GetWorkOrderByID(ctx context.Context, id uuid.UUID) (*models.WorkOrder, error)
	CreateWorkOrder(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkOrderRequest) (*models.WorkOrder, error)
	UpdateWorkOrderStatus(ctx context.Context, id uuid.UUID, status string) (*models.WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, id uuid.UUID) error
}

// workOrderServiceImpl implements WorkOrderService
type workOrderServiceImpl struct {
	workOrderRepo *repositories.WorkOrderRepository
	logger        zerolog.Logger
}

// NewWorkOrderService creates a new WorkOrderService
func NewWorkOrderService(workOrderRepo *repositories.WorkOrderRepository, logger zerolog.Logger) WorkOrderService {
	return &workOrderServiceImpl{workOrderRepo: workOrderRepo, logger: logger}
}

func (s *workOrderServiceImpl) GetAllWorkOrders(ctx context.Context) ([]models.WorkOrder, error) {
	return s.workOrderRepo.GetAll(ctx)
}

func (s *workOrderServiceImpl) GetWorkOrderByID(ctx context.Context, id uuid.UUID) (*models.WorkOrder, error) {
	return s.workOrderRepo.GetByID(ctx, id)
}

func (s *workOrderServiceImpl) CreateWorkOrder(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkOrderRequest) (*models.WorkOrder, error) {
	status := req.Status
	if status == "" {
		status = models.WorkOrderStatusPending
	}

	order := &models.WorkOrder{
		ID:          uuid.New(),
		Description: req.Description,
		AssetID:     req.AssetID,
		UserID:      userID,
		Status:      status,
	}

	if err := s.workOrderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("userID", userID.String()).Msg("Failed to create work order")
		return nil, err
	}

	return s.workOrderRepo.GetByID(ctx, order.ID)
}

func (s *workOrderServiceImpl) UpdateWorkOrderStatus(ctx context.Context, id uuid.UUID, status string) (*models.WorkOrder, error) {
	order, err := s.workOrderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.workOrderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *workOrderServiceImpl) DeleteWorkOrder(ctx context.Context, id uuid.UUID) error {
	return s.workOrderRepo.Delete(ctx, id)
}
