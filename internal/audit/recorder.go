package audit

import (
	"encoding/json"

	"backend/internal/middleware"
	"backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder appends immutable audit entries describing committed mutations.
//
// Writes are best-effort: a failed audit insert is logged for operators and
// swallowed, never rolled into the response of a mutation that already
// succeeded.
type Recorder struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRecorder(db *gorm.DB, log *zap.Logger) *Recorder {
	return &Recorder{db: db, log: log}
}

// Record appends one entry, stamping actor, ip and user-agent from the
// request context. Call only after the mutation has committed.
func (r *Recorder) Record(c *gin.Context, action, resource string, metadata map[string]interface{}) {
	actorID, actorEmail := "", ""
	if actor, ok := middleware.ActorFromContext(c); ok {
		actorID, actorEmail = actor.ID, actor.Email
	}
	r.RecordAs(c, actorID, actorEmail, action, resource, metadata)
}

// RecordAs is Record with an explicit actor, for flows where no guarded
// actor context exists yet (login) or may be gone already (logout).
func (r *Recorder) RecordAs(c *gin.Context, actorID, actorEmail, action, resource string, metadata map[string]interface{}) {
	entry := model.AuditLog{
		Action:   action,
		Resource: resource,
	}

	if id, err := uuid.Parse(actorID); err == nil {
		entry.ActorID = &id
	}
	if actorEmail != "" {
		email := actorEmail
		entry.ActorEmail = &email
	}

	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			entry.Metadata = raw
		}
	}

	if ip := c.ClientIP(); ip != "" {
		entry.IPAddress = &ip
	}
	if ua := c.Request.UserAgent(); ua != "" {
		entry.UserAgent = &ua
	}

	if err := r.db.WithContext(c.Request.Context()).Create(&entry).Error; err != nil {
		r.log.Error("audit write failed",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.Error(err))
	}
}
