package server

import (
	"Crux/handler"
)

type Handlers struct {
	Like            *handler.Like
	Follow          *handler.Follow
	CommentsHandler *handler.CommentsHandler
	Notification    *handler.NotificationHandler
	WS              *handler.WSHandler
}
