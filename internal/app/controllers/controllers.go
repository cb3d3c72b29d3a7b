// Package controllers contains the Gin handlers for the portal API.
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/finsaarthi/scholarhub/internal/app/models"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextName   = "name"
	ContextRole   = "role"
)

// currentUserID reads the authenticated user id from the request
// context.
func currentUserID(ctx *gin.Context) (string, bool) {
	v, ok := ctx.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// currentRole reads the authenticated role from the request context.
func currentRole(ctx *gin.Context) models.RoleType {
	v, ok := ctx.Get(ContextRole)
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return models.RoleType(role)
}
