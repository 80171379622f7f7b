package utils

import (
	"encoding/json"
	"log"

	"github.com/formlight/formlight/internal/domain/audit"
	"github.com/formlight/formlight/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// LogAuditWithConsole records an audit entry for the current request
// without blocking it. Request attribution (actor, ip, user agent) is
// read synchronously; the write runs in the background and a failure is
// logged, never propagated.
var LogAuditWithConsole = func(c *gin.Context, action audit.Action, resourceType, resourceID string, before, after any, description string, repos repository.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		entry := &audit.AuditLog{
			UserID:       userID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			OldData:      snapshot(before),
			NewData:      snapshot(after),
			IPAddress:    ip,
			UserAgent:    ua,
			Description:  description,
		}
		if err := LogAudit(entry, repos); err != nil {
			log.Printf("[audit] %s %s/%s: %v", action, resourceType, resourceID, err)
		}
	}()
}

// LogAudit appends one entry. Kept as a var so tests can intercept the
// write.
var LogAudit = func(entry *audit.AuditLog, repos repository.AuditRepo) error {
	return repos.CreateAuditLog(entry)
}

func snapshot(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[audit] snapshot marshal: %v", err)
		return nil
	}
	return data
}
