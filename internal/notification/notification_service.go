package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	notificationerrors "go-siteops/internal/notification/errors"
)

const timeLayout = time.RFC3339

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	CreateForLaborRecord(ctx context.Context, notice LaborRecordNotice) (NotificationResponse, error)
	GetForEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id, employeeID string) error
	MarkAllRead(ctx context.Context, employeeID string) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	log := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		log = logger[0]
	}
	return &service{repo: repo, logger: log}
}

func (s *service) CreateForLaborRecord(ctx context.Context, notice LaborRecordNotice) (NotificationResponse, error) {
	employeeID, err := uuid.Parse(notice.EmployeeID)
	if err != nil {
		return NotificationResponse{}, fmt.Errorf("parse employee id %q: %w", notice.EmployeeID, err)
	}

	n := &Notification{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Type:       TypeLaborRecord,
		Title:      "Labor cost recorded",
		Message: fmt.Sprintf("A %s labor record of %.2f was created for you.",
			notice.PaymentType, notice.Amount),
	}
	if recordID, err := uuid.Parse(notice.LaborRecordID); err == nil {
		n.ReferenceID = &recordID
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return NotificationResponse{}, err
	}

	s.logger.Info("notification created",
		zap.String("notification_id", n.ID.String()),
		zap.String("employee_id", notice.EmployeeID),
		zap.String("type", TypeLaborRecord),
	)

	return mapToResponse(*n), nil
}

func (s *service) GetForEmployee(ctx context.Context, employeeID string, unreadOnly bool) ([]NotificationResponse, error) {
	rows, err := s.repo.FindByEmployee(ctx, employeeID, unreadOnly)
	if err != nil {
		return nil, err
	}

	res := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		res[i] = mapToResponse(n)
	}
	return res, nil
}

func (s *service) MarkRead(ctx context.Context, id, employeeID string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notificationerrors.ErrNotificationNotFound
		}
		return err
	}

	if n.EmployeeID.String() != employeeID {
		return notificationerrors.ErrNotYourNotification
	}
	if n.ReadAt != nil {
		return nil
	}

	return s.repo.MarkRead(ctx, id, time.Now().UTC())
}

func (s *service) MarkAllRead(ctx context.Context, employeeID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, employeeID, time.Now().UTC())
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:         n.ID.String(),
		EmployeeID: n.EmployeeID.String(),
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		CreatedAt:  n.CreatedAt.Format(timeLayout),
	}
	if n.ReferenceID != nil {
		ref := n.ReferenceID.String()
		resp.ReferenceID = &ref
	}
	if n.ReadAt != nil {
		read := n.ReadAt.Format(timeLayout)
		resp.ReadAt = &read
	}
	return resp
}
