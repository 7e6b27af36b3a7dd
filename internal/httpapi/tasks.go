package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	messageTaskSaved   = "Task Saved"
	messageTaskDeleted = "Task Deleted"
	// notFoundBody matches the body gin writes for unknown routes.
	notFoundBody = "404 page not found"
)

func (h *handler) handleAddTask(c *gin.Context) {
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WarnContext(c, "Rejected task", "error", err)
		abort(c, newBindError(err))
		return
	}

	if _, err := h.tasks.Add(c, *req.Title, req.coordinates()); err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messageTaskSaved})
}

func (h *handler) handleListTasks(c *gin.Context) {
	tasks, err := h.tasks.List(c)
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, newTaskRows(tasks))
}

func (h *handler) handleDeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c.Param("id"))
	if !ok {
		// Non-numeric ids never match the route.
		c.String(http.StatusNotFound, notFoundBody)
		return
	}

	if err := h.tasks.Delete(c, taskID); err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": messageTaskDeleted})
}

// parseTaskID accepts unsigned decimal ids that fit into int64.
func parseTaskID(raw string) (int64, bool) {
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, false
	}

	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return taskID, true
}
