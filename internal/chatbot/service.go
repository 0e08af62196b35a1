package chatbot

import (
	"context"
	"strings"
)

// WelcomeMessage opens every conversation.
const WelcomeMessage = "🌶️ Hey there! I'm Spice Bot, your fiery food assistant! How can I help you find the perfect spicy dish today?"

// QuickReplies are the suggested prompts surfaced to new conversations.
var QuickReplies = []string{
	"Recommend mild spicy dishes",
	"What's your spiciest item?",
	"Help with my order",
	"Delivery information",
	"Nutritional facts",
}

type rule struct {
	keywords []string
	reply    string
}

// Rules are evaluated in order and the first match wins, so a message
// containing both "mild" and "spiciest" gets the mild answer.
var rules = []rule{
	{
		keywords: []string{"mild", "not too spicy"},
		reply:    "🌶️ For mild heat, I recommend our Hell's Kitchen Pizza or Blazing Beef Tacos! They have great flavor with manageable spice levels. Perfect for building up your heat tolerance! 🍕🌮",
	},
	{
		keywords: []string{"spiciest", "hottest"},
		reply:    "🔥🔥🔥 Our spiciest dish is the Dragon's Breath Noodles and Fire Storm Ramen - both are 5/5 on the heat scale! Made with ghost peppers and Carolina Reapers. Are you brave enough? 😈",
	},
	{
		keywords: []string{"order", "help"},
		reply:    "📞 I'm here to help! You can modify quantities in your cart, track your order status, or contact our support team. What specific help do you need with your order?",
	},
	{
		keywords: []string{"delivery"},
		reply:    "🚚 We deliver within 30-45 minutes! Free delivery for orders over RM25. Our delivery areas cover all of KL and Selangor. Want to check if we deliver to your area?",
	},
	{
		keywords: []string{"nutrition", "calories"},
		reply:    "📊 All our dishes show calorie counts and nutritional info! We believe in transparency. Most dishes range from 520-890 calories. Any specific dietary concerns I can help with?",
	},
}

const fallbackReply = "🌶️ That's a great question! Our speciality is balancing incredible flavor with the perfect amount of heat. Would you like me to recommend dishes based on your spice tolerance, or do you have other questions about our menu?"

// Service answers customer questions with canned keyword-matched replies.
type Service interface {
	Reply(ctx context.Context, message string) string
}

type service struct{}

// NewService builds the rule-based chatbot.
func NewService() Service {
	return &service{}
}

// Reply always returns a non-empty answer, falling back to the generic
// response when no keyword matches.
func (s *service) Reply(_ context.Context, message string) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}
	return fallbackReply
}
