package server

import (
	"warehouse-portal/domain"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	TenantID string `json:"warehouse_id"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		s.render(c, ViewLogin, err, "", nil)
		return
	}
	token, err := s.services.Auth.Login(c.Request.Context(), req.TenantID, req.Address, req.Password)
	if err != nil {
		s.render(c, ViewLogin, err, "", nil)
		return
	}
	s.render(c, ViewLogin, nil, "Welcome", loginResponse{Token: token.String()})
}

// ConversationView renders the conversation page. Opening it marks every
// unread receipt of the viewer as read.
func (s *Server) ConversationView(c *gin.Context) {
	view, err := s.services.Views.ConversationView(c.Request.Context(), principalFrom(c), c.Query("with"))
	if err != nil {
		s.render(c, ViewConversation, err, "", nil)
		return
	}
	s.render(c, ViewConversation, nil, "", view)
}

type sendMessageRequest struct {
	Destination string `json:"destination"`
	Body        string `json:"body"`
}

// SendMessage stores the message then re-renders the conversation with the
// outcome. A rejected message leaves the page as it was.
func (s *Server) SendMessage(c *gin.Context) {
	principal := principalFrom(c)
	var req sendMessageRequest
	err := bindJSON(c, &req)
	if err == nil {
		_, err = s.services.Messages.SendMessage(c.Request.Context(), domain.SendMessageCommand{
			TenantID:    principal.TenantID,
			From:        principal.Address,
			Destination: req.Destination,
			Body:        req.Body,
			SenderName:  principal.Name,
		})
	}
	view, viewErr := s.services.Views.ConversationView(c.Request.Context(), principal, req.Destination)
	if err == nil {
		err = viewErr
	}
	s.render(c, ViewConversation, err, "Successfully sent message", view)
}

func (s *Server) GroupMessageInfo(c *gin.Context) {
	receipts, err := s.services.Receipts.GroupMessageInfo(c.Request.Context(),
		principalFrom(c).TenantID, c.Param("correlationID"))
	s.render(c, ViewMessageInfo, err, "", receipts)
}
