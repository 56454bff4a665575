// Package domain defines the core domain models for the travel planner.
package domain

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleSystem is only ever sent to the LLM, never stored in a conversation.
	RoleSystem Role = "system"
)

// Itinerary markers the backend uses to delimit an inline itinerary payload.
const (
	MarkerStart = "ITINERARY_START"
	MarkerEnd   = "ITINERARY_END"
)

const (
	// WelcomeText seeds every new conversation.
	WelcomeText = "Hi! Welcome to AI Travel Planner! I'm here to help you create a personalized travel itinerary. Tell me about your travel plans - where would you like to go, for how long, and what kinds of activities interest you?"

	// FallbackText is shown whenever a chat exchange fails.
	FallbackText = "Sorry, there was an error processing your request. Please try again."
)
