package controllers

import (
	"time"

	"BabyNest/middlewares"
	"BabyNest/models"
	"BabyNest/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	childKey   = "child"
	dateLayout = "2006-01-02"
)

// fail writes the error envelope and logs server errors.
func fail(c *gin.Context, log *zap.Logger, err error) {
	if response.Error(c, err) {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
}

func caller(c *gin.Context) models.Owner {
	owner, _ := middlewares.CurrentOwner(c)
	return owner
}

// ChildScope loads the :childId of :parentId for the caller and stores it on
// the context for the handlers below it.
func ChildScope(children ChildUseCase, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		child, err := children.Authorize(c.Request.Context(), caller(c), c.Param("parentId"), c.Param("childId"))
		if err != nil {
			fail(c, log, err)
			c.Abort()
			return
		}
		c.Set(childKey, child)
		c.Next()
	}
}

func scopedChild(c *gin.Context) models.Child {
	v, _ := c.Get(childKey)
	child, _ := v.(models.Child)
	return child
}

// queryDate parses an optional YYYY-MM-DD query value in loc.
func queryDate(c *gin.Context, key string, loc *time.Location) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		response.Invalid(c, "Validation failed", map[string]string{key: "must be a date in YYYY-MM-DD format"})
		return nil, false
	}
	return &t, true
}

// queryRole parses the ?role= value, defaulting to parent.
func queryRole(c *gin.Context, raw string) (models.OwnerRole, bool) {
	role, err := models.ParseOwnerRole(raw)
	if err != nil {
		response.Invalid(c, "Validation failed", map[string]string{"role": "Unknown role"})
		return "", false
	}
	return role, true
}
