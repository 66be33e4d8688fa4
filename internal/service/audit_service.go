package service

import (
	"context"

	"hospital-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Audited write actions
const (
	AuditActionAddDoctor         = "doctor.create"
	AuditActionDeleteDoctor      = "doctor.delete"
	AuditActionBookAppointment   = "appointment.create"
	AuditActionCancelAppointment = "appointment.cancel"
)

// AuditService records every write the portal forwards to the backend.
// Entries go to the structured log, tagged so they can be filtered out.
type AuditService interface {
	LogAction(ctx context.Context, sess *entity.Session, action, target string, result entity.Result)
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

// LogAction logs a write action with its outcome. The session token is never logged.
func (s *auditService) LogAction(ctx context.Context, sess *entity.Session, action, target string, result entity.Result) {
	entry := s.log.WithFields(logrus.Fields{
		"audit":      true,
		"action":     action,
		"target":     target,
		"session_id": sess.ID,
		"role":       sess.Role.String(),
		"success":    result.Success,
		"message":    result.Message,
	})

	if !result.Success {
		entry.Warn("Audit: action failed")
		return
	}
	entry.Info("Audit: action succeeded")
}
