package controllers

import (
	"net/http"

	"github.com/amirulhakim/spicebite-backend/api/responses"
	"github.com/amirulhakim/spicebite-backend/api/validators"
	"github.com/amirulhakim/spicebite-backend/internal/chatbot"
	pkgerrors "github.com/amirulhakim/spicebite-backend/pkg/errors"
	"github.com/amirulhakim/spicebite-backend/pkg/logger"
)

// ChatbotIntro serves the opening message and suggested prompts.
func ChatbotIntro() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, chatbotIntroResponse{
			Welcome:      chatbot.WelcomeMessage,
			QuickReplies: chatbot.QuickReplies,
		})
	}
}

// ChatbotMessage answers a single customer message.
func ChatbotMessage(svc chatbot.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chatbot service unavailable"))
			return
		}
		var payload chatbotMessageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		reply := svc.Reply(r.Context(), payload.Message)
		responses.WriteSuccess(w, chatbotMessageResponse{Reply: reply})
	}
}

type chatbotIntroResponse struct {
	Welcome      string   `json:"welcome"`
	QuickReplies []string `json:"quick_replies"`
}

type chatbotMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=500"`
}

type chatbotMessageResponse struct {
	Reply string `json:"reply"`
}
