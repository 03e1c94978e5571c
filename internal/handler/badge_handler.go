package handler

import (
	"net/http"
	"time"

	taskboardsync "taskboard/internal/sync"

	"github.com/gin-gonic/gin"
)

type BadgeHandler struct {
	refresher *taskboardsync.BadgeRefresher
}

func NewBadgeHandler(refresher *taskboardsync.BadgeRefresher) *BadgeHandler {
	return &BadgeHandler{refresher: refresher}
}

// BadgeResponse представляет кэшированные счетчики непрочитанного
type BadgeResponse struct {
	UnreadFeedback   int      `json:"unread_feedback"`
	UnreadReplyTasks []string `json:"unread_reply_tasks"`
	RefreshedAt      string   `json:"refreshed_at"`
}

// Summary возвращает снимок счетчиков текущего пользователя. Снимок
// обновляется по расписанию и может отставать на один интервал.
func (h *BadgeHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, found := h.refresher.Summary(userID)
	if !found {
		c.JSON(http.StatusOK, BadgeResponse{UnreadReplyTasks: []string{}})
		return
	}

	taskIDs := make([]string, len(summary.UnreadReplyTasks))
	for i, id := range summary.UnreadReplyTasks {
		taskIDs[i] = id.String()
	}

	c.JSON(http.StatusOK, BadgeResponse{
		UnreadFeedback:   summary.UnreadFeedback,
		UnreadReplyTasks: taskIDs,
		RefreshedAt:      summary.RefreshedAt.Format(time.RFC3339),
	})
}
